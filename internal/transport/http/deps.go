package http

import (
	"github.com/fixithub/universe/internal/infrastructure/dynamo"
	jwtinfra "github.com/fixithub/universe/internal/infrastructure/jwt"
	resendinfra "github.com/fixithub/universe/internal/infrastructure/resend"
	s3infra "github.com/fixithub/universe/internal/infrastructure/s3"
	"github.com/fixithub/universe/internal/store/memory"
)

// Deps holds all infrastructure dependencies for the router. Everything is
// injected here; no package-level singletons.
type Deps struct {
	Credentials *memory.Store
	IssueRepo   *dynamo.IssueRepo
	DocketRepo  *dynamo.DocketRepo
	PhotoStore  *s3infra.Store
	Mailer      resendinfra.Mailer // nil when RESEND_API_KEY is missing
	JWTProvider *jwtinfra.Provider
}
