package model

// UserRecord holds the registration material for an account. Both fields are
// opaque to the engine: the public key and the encrypted client token are
// produced and consumed on the client side.
type UserRecord struct {
	PublicKey      string `json:"publicKey" yaml:"publicKey"`
	EncryptedToken string `json:"encryptedToken" yaml:"encryptedToken"`
	_              struct{}
}
