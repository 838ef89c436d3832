package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"artshop/internal/domain/user"
	"artshop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	tokenKeyPrefix     = "token:"
	userTokenKeyPrefix = "user_token:"
	sessionKeyPrefix   = "session:"

	tokenBytes = 32
)

var ErrInvalidToken = errs.New("invalid or expired token")

type Session struct {
	UserID   uuid.UUID
	Username string
	Role     user.Role
}

// commands is the slice of go-redis used by the manager. *redis.Client
// satisfies it; unit tests fake it.
type commands interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
	Eval(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd
}

// issueScript swaps the user's live token server-side in one atomic step:
// drop the forward index of the previous token, then write the new forward
// index, the reverse index and the session record under a shared TTL. Running
// it as a script rules out the race where two concurrent logins both observe
// "no previous token" and leave two valid tokens behind.
//
// KEYS[1] user_token:<uid>, KEYS[2] token:<new>, KEYS[3] session:<uid>
// ARGV[1] token, ARGV[2] ttl seconds, ARGV[3] user id, ARGV[4] username,
// ARGV[5] role, ARGV[6] forward-index key prefix
const issueScript = `
local old = redis.call('GET', KEYS[1])
if old then
    redis.call('DEL', ARGV[6] .. old)
end
redis.call('SET', KEYS[2], ARGV[3], 'EX', ARGV[2])
redis.call('SET', KEYS[1], ARGV[1], 'EX', ARGV[2])
redis.call('HSET', KEYS[3], 'username', ARGV[4], 'role', ARGV[5])
redis.call('EXPIRE', KEYS[3], ARGV[2])
return 1
`

// Manager issues and validates opaque bearer tokens backed by Redis. Each user
// has at most one live token: issuing a new one supersedes the previous, and
// expiry is enforced entirely by Redis TTLs (no background sweep).
//
// Validation is a direct key lookup (token -> user id), never a scan over the
// session keyspace.
type Manager struct {
	client commands
	ttl    time.Duration
}

func NewManager(client *redis.Client, ttl time.Duration) *Manager {
	return &Manager{client: client, ttl: ttl}
}

func newManagerWithCommands(client commands, ttl time.Duration) *Manager {
	return &Manager{client: client, ttl: ttl}
}

// Issue creates a fresh random token for the user, replacing any previous one,
// and stores the session record (username, role) under the same TTL. The whole
// supersede runs as one script, so at most one token per user validates even
// under concurrent logins.
func (m *Manager) Issue(ctx context.Context, userID uuid.UUID, username string, role user.Role) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", errs.Wrap(err, "failed to generate session token")
	}

	keys := []string{
		userTokenKeyPrefix + userID.String(),
		tokenKeyPrefix + token,
		sessionKeyPrefix + userID.String(),
	}
	ttlSeconds := int64(m.ttl / time.Second)

	err = m.client.Eval(ctx, issueScript, keys,
		token, ttlSeconds, userID.String(), username, role.String(), tokenKeyPrefix).Err()
	if err != nil {
		return "", errs.Wrap(err, "failed to issue session token")
	}

	return token, nil
}

// Validate resolves a presented token back to its session. Unknown, revoked and
// expired tokens all return ErrInvalidToken.
func (m *Manager) Validate(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	userIDStr, err := m.client.Get(ctx, tokenKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrInvalidToken
		}
		return nil, errs.Wrap(err, "failed to resolve token")
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, ErrInvalidToken
	}

	record, err := m.client.HGetAll(ctx, sessionKeyPrefix+userIDStr).Result()
	if err != nil {
		return nil, errs.Wrap(err, "failed to load session record")
	}
	if len(record) == 0 {
		// Token index outlived the session record; treat as revoked.
		return nil, ErrInvalidToken
	}

	role, err := user.NewRole(record["role"])
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &Session{
		UserID:   userID,
		Username: record["username"],
		Role:     role,
	}, nil
}

// Revoke deletes the user's token and session entries. Subsequent Validate
// calls for that token fail.
func (m *Manager) Revoke(ctx context.Context, userID uuid.UUID) error {
	userTokenKey := userTokenKeyPrefix + userID.String()

	token, err := m.client.Get(ctx, userTokenKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return errs.Wrap(err, "failed to read token for revocation")
	}

	keys := []string{userTokenKey, sessionKeyPrefix + userID.String()}
	if token != "" {
		keys = append(keys, tokenKeyPrefix+token)
	}

	if err := m.client.Del(ctx, keys...).Err(); err != nil {
		return errs.Wrap(err, "failed to delete session keys")
	}
	return nil
}

func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
