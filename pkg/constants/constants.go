package constants

const (
	DataFormate = "2006-01-02T15:04:05Z07:00"

	IdentityKey = "user_id"
	SessionKey  = "session"

	// MaxCommentDepth is the number of reply levels rendered and accepted below a
	// top-level comment.
	MaxCommentDepth = 1

	MaxCommentLength = 500
	MaxMessageLength = 2000

	DefaultStoreDir      = "data"
	DefaultUploadDir     = "public/uploads"
	DefaultPublicPrefix  = "/uploads"
	DefaultRedisPrefix   = "flowtube"
	DefaultMinioBucket   = "uploads"
	DefaultMinioLocation = "us-east-1"
	DefaultSearchIndex   = "content"
)
