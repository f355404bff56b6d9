package port

type TokenPayload struct {
	Subject string
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(subject string) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}
