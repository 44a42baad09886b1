package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// MagistrateConfig is the single configuration document gating the
// magistrate secure area: an email allowlist plus a 4-digit access PIN.
// The PIN is a static shared secret compared verbatim, as the front end
// always treated it; it is never returned by any endpoint.
type MagistrateConfig struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	EmailsPermitidos []string           `bson:"emails_permitidos" json:"emails_permitidos"`
	PinAcesso        string             `bson:"pin_acesso" json:"-"`
}

// HasAccess reports whether email is on the allowlist
func (mc *MagistrateConfig) HasAccess(email string) bool {
	for _, allowed := range mc.EmailsPermitidos {
		if allowed == email {
			return true
		}
	}
	return false
}

// AccessResponse reports allowlist membership for the caller
type AccessResponse struct {
	Email     string `json:"email"`
	HasAccess bool   `json:"has_access"`
}

// UnlockRequest carries the PIN attempt
type UnlockRequest struct {
	PIN string `json:"pin" binding:"required,len=4,numeric"`
}

// UnlockResponse carries the secure-area token granted after a correct PIN
type UnlockResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in_seconds"`
}
