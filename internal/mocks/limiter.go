package mocks

import "github.com/stretchr/testify/mock"

type Limiter struct {
	mock.Mock
}

func (m *Limiter) Allow(key string) bool {
	args := m.Called(key)
	return args.Bool(0)
}
