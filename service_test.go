package registration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type ServiceTestSuite struct {
	suite.Suite
	store   AccountStore
	svc     Service
	payload RegistrationPayload
}

func (suite *ServiceTestSuite) SetupTest() {
	suite.store = NewAccountRepository()
	suite.svc = NewService(suite.store, time.Second, bcrypt.MinCost)
	suite.payload = validPayload()
}

func (suite *ServiceTestSuite) TestRegister_CreatesAccount() {
	outcome := suite.svc.Register(context.Background(), suite.payload)

	assert.Equal(suite.T(), OutcomeCreated, outcome.Kind)
	assert.True(suite.T(), IsValidID(string(outcome.Account.ID)))
	assert.Equal(suite.T(), suite.payload.Email, outcome.Account.Email)
	assert.Equal(suite.T(), suite.payload.Name, outcome.Account.Name)
	assert.False(suite.T(), outcome.Account.CreatedAt.IsZero())
}

func (suite *ServiceTestSuite) TestRegister_AssignsAHashedPassword() {
	outcome := suite.svc.Register(context.Background(), suite.payload)

	acc, err := suite.store.FindByEmail(context.Background(), suite.payload.Email)

	assert.Nil(suite.T(), err)
	assert.NotEqual(suite.T(), suite.payload.Password, acc.PasswordHash)
	assert.True(suite.T(), hashMatchesPassword(acc.PasswordHash, suite.payload.Password))
	assert.Equal(suite.T(), outcome.Account.PasswordHash, acc.PasswordHash)
}

func (suite *ServiceTestSuite) TestRegister_InvalidPayloadNeverTouchesStore() {
	outcome := suite.svc.Register(context.Background(), RegistrationPayload{Email: "bad", Name: "A", Password: "short"})

	assert.Equal(suite.T(), OutcomeValidationFailed, outcome.Kind)
	assert.NotEmpty(suite.T(), outcome.Errors)

	n, err := suite.store.Count(context.Background())
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(0), n)
}

func (suite *ServiceTestSuite) TestRegister_ExistingEmailIsTaken() {
	first := suite.svc.Register(context.Background(), suite.payload)
	assert.Equal(suite.T(), OutcomeCreated, first.Kind)

	for i := 0; i < 3; i++ {
		retry := suite.svc.Register(context.Background(), suite.payload)
		assert.Equal(suite.T(), OutcomeEmailTaken, retry.Kind)
	}

	n, _ := suite.store.Count(context.Background())
	assert.Equal(suite.T(), int64(1), n)
}

func (suite *ServiceTestSuite) TestRegister_StoreFailureIsAStorageError() {
	cause := errors.New("backend unavailable")
	svc := NewService(&failingStore{err: cause}, time.Second, bcrypt.MinCost)

	outcome := svc.Register(context.Background(), suite.payload)

	assert.Equal(suite.T(), OutcomeStorageError, outcome.Kind)
	assert.Equal(suite.T(), cause, outcome.Cause)
}

func (suite *ServiceTestSuite) TestRegister_HangingStoreTimesOutAsStorageError() {
	svc := NewService(&blockingStore{}, 20*time.Millisecond, bcrypt.MinCost)

	outcome := svc.Register(context.Background(), suite.payload)

	assert.Equal(suite.T(), OutcomeStorageError, outcome.Kind)
	assert.ErrorIs(suite.T(), outcome.Cause, context.DeadlineExceeded)
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

type failingStore struct {
	err error
}

func (s *failingStore) FindByEmail(context.Context, string) (*Account, error) { return nil, s.err }
func (s *failingStore) CreateIfAbsent(context.Context, *Account) error        { return s.err }
func (s *failingStore) Count(context.Context) (int64, error)                  { return 0, s.err }

// blockingStore simulates a hung backend: calls return only when the
// caller's context is done.
type blockingStore struct{}

func (s *blockingStore) FindByEmail(ctx context.Context, _ string) (*Account, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (s *blockingStore) CreateIfAbsent(ctx context.Context, _ *Account) error {
	<-ctx.Done()
	return ctx.Err()
}

func (s *blockingStore) Count(ctx context.Context) (int64, error) {
	<-ctx.Done()
	return 0, ctx.Err()
}
