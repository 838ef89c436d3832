//go:build unit

package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"artshop/internal/domain/user"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCommands emulates the Redis keyspace the manager uses: plain strings for
// the token indexes and a hash for the session record. TTLs are ignored;
// expiry behavior is covered by the e2e suite against real Redis. Like Redis,
// each command (and a whole script) executes atomically.
type fakeCommands struct {
	mu      sync.Mutex
	strings map[string]string
	hashes  map[string]map[string]string
}

func newFakeCommands() *fakeCommands {
	return &fakeCommands{
		strings: map[string]string{},
		hashes:  map[string]map[string]string{},
	}
}

func (f *fakeCommands) Get(ctx context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	val, ok := f.strings[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (f *fakeCommands) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	var removed int64
	for _, key := range keys {
		if _, ok := f.strings[key]; ok {
			delete(f.strings, key)
			removed++
		}
		if _, ok := f.hashes[key]; ok {
			delete(f.hashes, key)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

func (f *fakeCommands) HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	hash := f.hashes[key]
	out := make(map[string]string, len(hash))
	for k, v := range hash {
		out[k] = v
	}
	return redis.NewMapStringStringResult(out, nil)
}

// Eval executes the issue script's effect in one step, holding the lock for
// the whole swap the way Redis holds the server for a script.
func (f *fakeCommands) Eval(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	token := args[0].(string)
	userID := args[2].(string)
	username := args[3].(string)
	role := args[4].(string)
	prefix := args[5].(string)

	if old, ok := f.strings[keys[0]]; ok {
		delete(f.strings, prefix+old)
	}
	f.strings[keys[1]] = userID
	f.strings[keys[0]] = token
	f.hashes[keys[2]] = map[string]string{"username": username, "role": role}
	return redis.NewCmdResult(int64(1), nil)
}

func TestManager_IssueAndValidate(t *testing.T) {
	ctx := context.Background()
	fake := newFakeCommands()
	m := newManagerWithCommands(fake, time.Hour)
	userID := uuid.New()

	token, err := m.Issue(ctx, userID, "alice", user.RoleCustomer)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sess, err := m.Validate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, sess.UserID)
	assert.Equal(t, "alice", sess.Username)
	assert.Equal(t, user.RoleCustomer, sess.Role)
}

func TestManager_Validate_UnknownToken(t *testing.T) {
	ctx := context.Background()
	m := newManagerWithCommands(newFakeCommands(), time.Hour)

	_, err := m.Validate(ctx, "deadbeef")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Validate_EmptyToken(t *testing.T) {
	ctx := context.Background()
	m := newManagerWithCommands(newFakeCommands(), time.Hour)

	_, err := m.Validate(ctx, "")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Issue_SupersedesPreviousToken(t *testing.T) {
	ctx := context.Background()
	fake := newFakeCommands()
	m := newManagerWithCommands(fake, time.Hour)
	userID := uuid.New()

	first, err := m.Issue(ctx, userID, "alice", user.RoleCustomer)
	require.NoError(t, err)

	second, err := m.Issue(ctx, userID, "alice", user.RoleCustomer)
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	// Only the newest token validates.
	_, err = m.Validate(ctx, first)
	require.ErrorIs(t, err, ErrInvalidToken)

	sess, err := m.Validate(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, userID, sess.UserID)
}

func TestManager_Issue_ConcurrentIssuesLeaveOneLiveToken(t *testing.T) {
	ctx := context.Background()
	fake := newFakeCommands()
	m := newManagerWithCommands(fake, time.Hour)
	userID := uuid.New()

	const logins = 8
	tokens := make([]string, logins)

	var wg sync.WaitGroup
	for i := range tokens {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			token, err := m.Issue(ctx, userID, "alice", user.RoleCustomer)
			assert.NoError(t, err)
			tokens[i] = token
		}(i)
	}
	wg.Wait()

	// No matter how the logins interleave, exactly one token survives.
	live := 0
	for _, token := range tokens {
		if _, err := m.Validate(ctx, token); err == nil {
			live++
		}
	}
	assert.Equal(t, 1, live)
}

func TestManager_Revoke(t *testing.T) {
	ctx := context.Background()
	fake := newFakeCommands()
	m := newManagerWithCommands(fake, time.Hour)
	userID := uuid.New()

	token, err := m.Issue(ctx, userID, "alice", user.RoleAdmin)
	require.NoError(t, err)

	require.NoError(t, m.Revoke(ctx, userID))

	_, err = m.Validate(ctx, token)
	require.ErrorIs(t, err, ErrInvalidToken)

	// All three keys are gone.
	assert.Empty(t, fake.strings)
	assert.Empty(t, fake.hashes)
}

func TestManager_Revoke_WithoutSession(t *testing.T) {
	ctx := context.Background()
	m := newManagerWithCommands(newFakeCommands(), time.Hour)

	// Revoking a user with no live session is not an error.
	require.NoError(t, m.Revoke(ctx, uuid.New()))
}

func TestManager_Validate_SessionRecordMissing(t *testing.T) {
	ctx := context.Background()
	fake := newFakeCommands()
	m := newManagerWithCommands(fake, time.Hour)
	userID := uuid.New()

	token, err := m.Issue(ctx, userID, "alice", user.RoleCustomer)
	require.NoError(t, err)

	// Simulate the session hash expiring ahead of the token index.
	delete(fake.hashes, sessionKeyPrefix+userID.String())

	_, err = m.Validate(ctx, token)
	require.ErrorIs(t, err, ErrInvalidToken)
}
