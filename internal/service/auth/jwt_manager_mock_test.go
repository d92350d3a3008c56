package auth

import (
	"sync"

	"github.com/google/uuid"
)

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateAccessTokenFunc func(userID uuid.UUID, role string) (string, error)
	GenerateResetTokenFunc  func() (string, string, error)

	calls struct {
		GenerateAccessToken []struct {
			UserID uuid.UUID
			Role   string
		}
		GenerateResetToken []struct{}
	}
	lockGenerateAccessToken sync.RWMutex
	lockGenerateResetToken  sync.RWMutex
}

func (mock *jwtManagerMock) GenerateAccessToken(userID uuid.UUID, role string) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc: method is nil but jwtManager.GenerateAccessToken was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Role   string
	}{UserID: userID, Role: role}
	mock.lockGenerateAccessToken.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.lockGenerateAccessToken.Unlock()
	return mock.GenerateAccessTokenFunc(userID, role)
}

func (mock *jwtManagerMock) GenerateAccessTokenCalls() []struct {
	UserID uuid.UUID
	Role   string
} {
	mock.lockGenerateAccessToken.RLock()
	calls := mock.calls.GenerateAccessToken
	mock.lockGenerateAccessToken.RUnlock()
	return calls
}

func (mock *jwtManagerMock) GenerateResetToken() (string, string, error) {
	if mock.GenerateResetTokenFunc == nil {
		panic("jwtManagerMock.GenerateResetTokenFunc: method is nil but jwtManager.GenerateResetToken was just called")
	}
	mock.lockGenerateResetToken.Lock()
	mock.calls.GenerateResetToken = append(mock.calls.GenerateResetToken, struct{}{})
	mock.lockGenerateResetToken.Unlock()
	return mock.GenerateResetTokenFunc()
}

func (mock *jwtManagerMock) GenerateResetTokenCalls() []struct{} {
	mock.lockGenerateResetToken.RLock()
	calls := mock.calls.GenerateResetToken
	mock.lockGenerateResetToken.RUnlock()
	return calls
}
