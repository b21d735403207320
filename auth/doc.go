/*
Package auth provides password hashing and session token primitives.

# Password Hashing

Passwords are hashed with Argon2id and stored in the standard encoded
form:

	hash, err := auth.HashPassword(password)
	ok := auth.VerifyPassword(hash, password)

Verification never reports why it failed; malformed or empty hashes
(social-login accounts carry an empty hash) just return false.

# Session Tokens

Sessions are stateless HS256 tokens carrying the account id (sub) and
admin flag:

	tm := auth.NewTokenManager(cfg.SessionSecret, cfg.SessionTTL)
	token, expiresAt, err := tm.Issue(profile.ID, profile.IsAdmin)
	claims, err := tm.Verify(token)

# Random IDs

GenerateID produces random hex strings for password-reset tokens and
OAuth state values:

	token, err := auth.GenerateID(24)
*/
package auth
