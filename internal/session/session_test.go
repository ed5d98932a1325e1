package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"gamechanger/internal/models"
	"gamechanger/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordRepoStub lets a test override individual record operations.
type recordRepoStub struct {
	repository.RecordRepository
	getFn    func(ctx context.Context, key string) ([]byte, bool, error)
	putFn    func(ctx context.Context, key string, value []byte) error
	deleteFn func(ctx context.Context, key string) error
}

func (s *recordRepoStub) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if s.getFn != nil {
		return s.getFn(ctx, key)
	}
	return s.RecordRepository.Get(ctx, key)
}

func (s *recordRepoStub) Put(ctx context.Context, key string, value []byte) error {
	if s.putFn != nil {
		return s.putFn(ctx, key, value)
	}
	return s.RecordRepository.Put(ctx, key, value)
}

func (s *recordRepoStub) Delete(ctx context.Context, key string) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, key)
	}
	return s.RecordRepository.Delete(ctx, key)
}

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func openStore(t *testing.T, records repository.RecordRepository) *Store {
	t.Helper()
	return Open(context.Background(), records, Options{Logger: quietLogger})
}

func sampleIdentity() models.Identity {
	return models.Identity{ID: "1", Name: "X", Email: "x@x.com", Role: models.RoleAthlete}
}

func recordPresent(t *testing.T, records repository.RecordRepository, key string) bool {
	t.Helper()
	_, ok, err := records.Get(context.Background(), key)
	require.NoError(t, err)
	return ok
}

func TestOpen_EmptyStorageIsAnonymous(t *testing.T) {
	s := openStore(t, repository.NewMemoryRecordRepository())

	_, ok := s.CurrentIdentity()
	assert.False(t, ok)
	assert.False(t, s.Authenticated())
	assert.Equal(t, "gamechangerUser", s.Key())
}

func TestLoginLogout(t *testing.T) {
	records := repository.NewMemoryRecordRepository()
	s := openStore(t, records)
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, sampleIdentity()))
	assert.True(t, s.Authenticated())
	assert.True(t, recordPresent(t, records, "gamechangerUser"))

	require.NoError(t, s.Logout(ctx))
	assert.False(t, s.Authenticated())
	assert.False(t, recordPresent(t, records, "gamechangerUser"))
}

func TestLogout_Idempotent(t *testing.T) {
	records := repository.NewMemoryRecordRepository()
	s := openStore(t, records)
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, sampleIdentity()))
	require.NoError(t, s.Logout(ctx))
	require.NoError(t, s.Logout(ctx))

	assert.False(t, s.Authenticated())
	assert.Equal(t, 0, records.Len())
}

func TestReopen_RestoresIdentity(t *testing.T) {
	records := repository.NewMemoryRecordRepository()
	ctx := context.Background()

	require.NoError(t, openStore(t, records).Login(ctx, sampleIdentity()))

	reopened := openStore(t, records)
	identity, ok := reopened.CurrentIdentity()
	require.True(t, ok)
	assert.Equal(t, "X", identity.Name)
	assert.Equal(t, models.RoleAthlete, identity.Role)
}

func TestReopen_RoleFieldsSurvive(t *testing.T) {
	records := repository.NewMemoryRecordRepository()
	ctx := context.Background()

	scout := models.Identity{
		ID: "1700000000000", Name: "Meera Gupta", Email: "meera@x.com", Role: models.RoleScout,
		Location: "Bangalore",
		Scout:    &models.ScoutFields{ClubName: "Cricket Excellence Academy", Specialization: "Cricket"},
	}
	require.NoError(t, openStore(t, records).Login(ctx, scout))

	identity, ok := openStore(t, records).CurrentIdentity()
	require.True(t, ok)
	assert.Equal(t, scout, identity)
}

func TestReopen_BadRecordIsAnonymous(t *testing.T) {
	tests := []struct {
		name   string
		record string
	}{
		{"corrupted json", `{"id":"1","name":`},
		{"not an object", `"gamechanger"`},
		{"missing email", `{"id":"1","name":"X","type":"athlete"}`},
		{"unknown role", `{"id":"1","name":"X","email":"x@x.com","type":"admin"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := repository.NewMemoryRecordRepository()
			require.NoError(t, records.Put(context.Background(), "gamechangerUser", []byte(tt.record)))

			var s *Store
			require.NotPanics(t, func() { s = openStore(t, records) })
			assert.False(t, s.Authenticated())
		})
	}
}

func TestOpen_StorageReadFailureIsAnonymous(t *testing.T) {
	records := &recordRepoStub{
		RecordRepository: repository.NewMemoryRecordRepository(),
		getFn: func(context.Context, string) ([]byte, bool, error) {
			return nil, false, errors.New("storage unavailable")
		},
	}

	s := openStore(t, records)
	assert.False(t, s.Authenticated())
}

func TestLogin_LastWriteWins(t *testing.T) {
	records := repository.NewMemoryRecordRepository()
	s := openStore(t, records)
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, sampleIdentity()))
	second := models.Identity{ID: "2", Name: "Y", Email: "y@x.com", Role: models.RoleScout}
	require.NoError(t, s.Login(ctx, second))

	identity, _ := s.CurrentIdentity()
	assert.Equal(t, "Y", identity.Name)

	restored, _ := openStore(t, records).CurrentIdentity()
	assert.Equal(t, "2", restored.ID)
	assert.Equal(t, 1, records.Len(), "exactly one record key is used")
}

func TestLogin_MissingFields(t *testing.T) {
	records := repository.NewMemoryRecordRepository()
	s := openStore(t, records)

	err := s.Login(context.Background(), models.Identity{Name: "X"})
	require.Error(t, err)
	assert.True(t, models.HasCode(err, models.CodeValidation))
	assert.False(t, s.Authenticated())
	assert.Equal(t, 0, records.Len())
}

func TestLogin_WriteFailureLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	records := &recordRepoStub{RecordRepository: repository.NewMemoryRecordRepository()}
	s := openStore(t, records)
	require.NoError(t, s.Login(ctx, sampleIdentity()))

	records.putFn = func(context.Context, string, []byte) error {
		return models.NewInternalError(errors.New("quota exceeded"))
	}

	err := s.Login(ctx, models.Identity{ID: "2", Name: "Y", Email: "y@x.com", Role: models.RoleAthlete})
	require.Error(t, err)

	identity, ok := s.CurrentIdentity()
	require.True(t, ok)
	assert.Equal(t, "X", identity.Name)
}

func TestLogout_DeleteFailureStillClearsMemory(t *testing.T) {
	ctx := context.Background()
	records := &recordRepoStub{RecordRepository: repository.NewMemoryRecordRepository()}
	s := openStore(t, records)
	require.NoError(t, s.Login(ctx, sampleIdentity()))

	records.deleteFn = func(context.Context, string) error { return errors.New("read only") }

	assert.Error(t, s.Logout(ctx))
	assert.False(t, s.Authenticated())
}

func TestCurrentIdentity_ReturnsCopy(t *testing.T) {
	s := openStore(t, repository.NewMemoryRecordRepository())
	identity := sampleIdentity()
	identity.Athlete = &models.AthleteFields{Sport: "Football"}
	require.NoError(t, s.Login(context.Background(), identity))

	got, _ := s.CurrentIdentity()
	got.Name = "changed"
	got.Athlete.Sport = "Cricket"

	again, _ := s.CurrentIdentity()
	assert.Equal(t, "X", again.Name)
	assert.Equal(t, "Football", again.Athlete.Sport)
}

func TestCustomKey(t *testing.T) {
	records := repository.NewMemoryRecordRepository()
	s := Open(context.Background(), records, Options{Key: "otherUser", Logger: quietLogger})

	require.NoError(t, s.Login(context.Background(), sampleIdentity()))
	assert.True(t, recordPresent(t, records, "otherUser"))
	assert.False(t, recordPresent(t, records, "gamechangerUser"))
}

func TestConcurrentLoginLogout(t *testing.T) {
	records := repository.NewMemoryRecordRepository()
	s := openStore(t, records)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.Login(ctx, sampleIdentity())
		}()
		go func() {
			defer wg.Done()
			_ = s.Logout(ctx)
		}()
	}
	wg.Wait()

	// memory and storage agree once every mutation has completed
	assert.Equal(t, s.Authenticated(), recordPresent(t, records, "gamechangerUser"))
}

func TestDemoIdentity(t *testing.T) {
	tests := []struct {
		name, inName, inEmail string
		wantName, wantEmail   string
	}{
		{"defaults", "", "", DemoName, DemoEmail},
		{"blank name", "  ", "a@b.c", DemoName, "a@b.c"},
		{"given", "Sam Daniel", "sam@x.com", "Sam Daniel", "sam@x.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity := DemoIdentity(tt.inName, tt.inEmail)
			assert.Equal(t, "1", identity.ID)
			assert.Equal(t, models.RoleAthlete, identity.Role)
			assert.Equal(t, tt.wantName, identity.Name)
			assert.Equal(t, tt.wantEmail, identity.Email)
			assert.NoError(t, identity.Validate())
		})
	}
}
