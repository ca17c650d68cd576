package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued at login.
//
// It extends the standard registered claim set (RFC 7519) with the identity
// fields the API relies on: the account ID and email. Role is declared for
// forward compatibility but is never populated by the server; verifiers must
// treat it as optional and absent.
type Claims struct {
	// ID is the account identifier of the token owner.
	ID int64 `json:"id"`

	// Email is the account email at issuance time.
	Email string `json:"email"`

	// Role is reserved and always empty in issued tokens.
	Role string `json:"role,omitempty"`

	jwt.RegisteredClaims
}

// Token wraps an issued or verified JWT together with its decoded claims.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the decoded identity claim set carried by the token.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
