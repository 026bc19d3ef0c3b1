package speech

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mock types ---

type MockService struct {
	mock.Mock
}

func (m *MockService) Provider() Provider {
	args := m.Called()
	return Provider(args.String(0))
}

func (m *MockService) Generate(ctx context.Context, text string, opts *GenerateOptions) (*Result, error) {
	args := m.Called(ctx, text, opts)
	if res, ok := args.Get(0).(*Result); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockService) Close() error {
	args := m.Called()
	return args.Error(0)
}

// --- Tests ---

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	mockService := new(MockService)
	mockService.On("Provider").Return("test-provider")

	reg.Register(mockService)

	got, ok := reg.Get("test-provider")
	assert.True(t, ok)
	assert.Equal(t, mockService, got)

	// Ensure a missing provider returns false
	_, ok = reg.Get("missing")
	assert.False(t, ok)

	mockService.AssertExpectations(t)
}

func TestRegistry_List(t *testing.T) {
	reg := NewRegistry()

	s1 := new(MockService)
	s2 := new(MockService)
	s1.On("Provider").Return("p1")
	s2.On("Provider").Return("p2")

	reg.Register(s1)
	reg.Register(s2)

	assert.ElementsMatch(t, []Provider{"p1", "p2"}, reg.List())
}

func TestRegistry_Close(t *testing.T) {
	reg := NewRegistry()

	s1 := new(MockService)
	s2 := new(MockService)
	s1.On("Provider").Return("p1")
	s2.On("Provider").Return("p2")

	s1.On("Close").Return(nil).Once()
	s2.On("Close").Return(nil).Once()

	reg.Register(s1)
	reg.Register(s2)

	err := reg.Close()
	assert.NoError(t, err)

	s1.AssertExpectations(t)
	s2.AssertExpectations(t)
}

func TestRegistry_CloseErrorPropagation(t *testing.T) {
	reg := NewRegistry()

	s1 := new(MockService)
	s2 := new(MockService)

	s1.On("Provider").Return("p1")
	s2.On("Provider").Return("p2")

	s1.On("Close").Return(errors.New("close failed")).Once()
	s2.On("Close").Return(nil).Maybe()

	reg.Register(s1)
	reg.Register(s2)

	err := reg.Close()
	assert.EqualError(t, err, "close failed")

	s1.AssertExpectations(t)
	s2.AssertExpectations(t)
}
