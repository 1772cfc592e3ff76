package storagemocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// Taxonomy is an autogenerated mock type for the Taxonomy type
type Taxonomy struct {
	mock.Mock
}

type Taxonomy_Expecter struct {
	mock *mock.Mock
}

func (_m *Taxonomy) EXPECT() *Taxonomy_Expecter {
	return &Taxonomy_Expecter{mock: &_m.Mock}
}

// ListCategories provides a mock function with given fields: ctx
func (_m *Taxonomy) ListCategories(ctx context.Context) ([]string, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListCategories")
	}

	var r0 []string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]string, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []string); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]string)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Taxonomy_ListCategories_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListCategories'
type Taxonomy_ListCategories_Call struct {
	*mock.Call
}

// ListCategories is a helper method to define mock.On call
//   - ctx context.Context
func (_e *Taxonomy_Expecter) ListCategories(ctx interface{}) *Taxonomy_ListCategories_Call {
	return &Taxonomy_ListCategories_Call{Call: _e.mock.On("ListCategories", ctx)}
}

func (_c *Taxonomy_ListCategories_Call) Run(run func(ctx context.Context)) *Taxonomy_ListCategories_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *Taxonomy_ListCategories_Call) Return(_a0 []string, _a1 error) *Taxonomy_ListCategories_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *Taxonomy_ListCategories_Call) RunAndReturn(run func(context.Context) ([]string, error)) *Taxonomy_ListCategories_Call {
	_c.Call.Return(run)
	return _c
}

// ListGenres provides a mock function with given fields: ctx
func (_m *Taxonomy) ListGenres(ctx context.Context) ([]string, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListGenres")
	}

	var r0 []string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]string, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []string); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]string)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Taxonomy_ListGenres_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListGenres'
type Taxonomy_ListGenres_Call struct {
	*mock.Call
}

// ListGenres is a helper method to define mock.On call
//   - ctx context.Context
func (_e *Taxonomy_Expecter) ListGenres(ctx interface{}) *Taxonomy_ListGenres_Call {
	return &Taxonomy_ListGenres_Call{Call: _e.mock.On("ListGenres", ctx)}
}

func (_c *Taxonomy_ListGenres_Call) Run(run func(ctx context.Context)) *Taxonomy_ListGenres_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *Taxonomy_ListGenres_Call) Return(_a0 []string, _a1 error) *Taxonomy_ListGenres_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *Taxonomy_ListGenres_Call) RunAndReturn(run func(context.Context) ([]string, error)) *Taxonomy_ListGenres_Call {
	_c.Call.Return(run)
	return _c
}

// NewTaxonomy creates a new instance of Taxonomy. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewTaxonomy(t interface {
	mock.TestingT
	Cleanup(func())
}) *Taxonomy {
	mock := &Taxonomy{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
