package authfunc

import (
	"FlowTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// Auth rejects requests without a valid token. Accepted requests carry a
// *session.Session readable with session.Current.
func Auth() []app.HandlerFunc {
	return append(make([]app.HandlerFunc, 0),
		jwt.JwtMiddleware.MiddlewareFunc(),
	)
}
