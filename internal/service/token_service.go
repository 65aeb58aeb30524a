package service

// TokenService signs and parses the bearer tokens handed out at signup and
// login. The token carries only the account's tokenSeed; resolving the seed
// back to an account is the caller's job.
type TokenService interface {
	NewSeed() (string, error)
	Sign(tokenSeed string) (string, error)
	ParseSeed(token string) (string, error)
}
