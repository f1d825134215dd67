package jwt

import (
	"context"
	"time"

	"FlowTube.com/cmd/model"
	user "FlowTube.com/cmd/user/service"
	"FlowTube.com/config"
	"FlowTube.com/pkg/constants"
	"FlowTube.com/pkg/errno"
	"FlowTube.com/pkg/session"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/google/uuid"
	"github.com/hertz-contrib/jwt"
)

const loginUserKey = "login_user"

var JwtMiddleware *jwt.HertzJWTMiddleware

type LoginParam struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

func JwtInit() {
	secret := config.ConfigInfo.Jwt.Secret
	if secret == "" {
		secret = uuid.NewString()
	}
	m, err := New(secret, config.ConfigInfo.Jwt.Timeout)
	if err != nil {
		hlog.Fatal("JWT Error:" + err.Error())
	}
	JwtMiddleware = m
}

// New builds the token middleware. The identity stored on each authenticated
// request is a *session.Session.
func New(secret string, timeout time.Duration) (*jwt.HertzJWTMiddleware, error) {
	return jwt.New(&jwt.HertzJWTMiddleware{
		Realm:         "flowtube",
		Key:           []byte(secret),
		Timeout:       timeout,
		MaxRefresh:    timeout,
		IdentityKey:   constants.IdentityKey,
		TokenLookup:   "header: Authorization, query: token, cookie: jwt",
		TokenHeadName: "Bearer",
		TimeFunc:      time.Now,
		Authenticator: func(ctx context.Context, c *app.RequestContext) (interface{}, error) {
			var param LoginParam
			if err := c.Bind(&param); err != nil {
				return nil, errno.RequestErr.WithMessage(err.Error())
			}
			u, err := user.NewLoginUserService(ctx).LoginUser(param.Username, param.Password)
			if err != nil {
				return nil, err
			}
			c.Set(loginUserKey, u)
			return u, nil
		},
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			if u, ok := data.(*model.PublicUser); ok {
				return jwt.MapClaims{
					constants.IdentityKey: u.Id,
					"username":            u.Username,
				}
			}
			return jwt.MapClaims{}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			id, _ := claims[constants.IdentityKey].(string)
			name, _ := claims["username"].(string)
			return &session.Session{UserId: id, Username: name}
		},
		LoginResponse: func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
			u, _ := c.Get(loginUserKey)
			c.JSON(consts.StatusOK, utils.H{
				"code":    errno.SuccessCode,
				"message": "Login Success",
				"data": utils.H{
					"token":  token,
					"expire": expire.Format(time.RFC3339),
					"user":   u,
				},
			})
		},
		RefreshResponse: func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
			c.JSON(consts.StatusOK, utils.H{
				"code":    errno.SuccessCode,
				"message": "Success",
				"data": utils.H{
					"token":  token,
					"expire": expire.Format(time.RFC3339),
				},
			})
		},
		HTTPStatusMessageFunc: func(e error, ctx context.Context, c *app.RequestContext) string {
			return errno.ConvertErr(e).ErrMsg
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			c.JSON(consts.StatusOK, utils.H{
				"code":    errno.TokenInvalidCode,
				"message": message,
				"data":    nil,
			})
		},
	})
}
