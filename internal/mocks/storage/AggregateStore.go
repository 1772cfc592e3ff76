package storagemocks

import (
	context "context"

	report "github.com/bonitofshh/MCO1-STADVDB/internal/core/report"
	mock "github.com/stretchr/testify/mock"
)

// AggregateStore is an autogenerated mock type for the AggregateStore type
type AggregateStore struct {
	mock.Mock
}

type AggregateStore_Expecter struct {
	mock *mock.Mock
}

func (_m *AggregateStore) EXPECT() *AggregateStore_Expecter {
	return &AggregateStore_Expecter{mock: &_m.Mock}
}

// QueryAggregates provides a mock function with given fields: ctx, p, mode
func (_m *AggregateStore) QueryAggregates(ctx context.Context, p report.Predicate, mode report.Mode) ([]report.Row, error) {
	ret := _m.Called(ctx, p, mode)

	if len(ret) == 0 {
		panic("no return value specified for QueryAggregates")
	}

	var r0 []report.Row
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, report.Predicate, report.Mode) ([]report.Row, error)); ok {
		return rf(ctx, p, mode)
	}
	if rf, ok := ret.Get(0).(func(context.Context, report.Predicate, report.Mode) []report.Row); ok {
		r0 = rf(ctx, p, mode)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]report.Row)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, report.Predicate, report.Mode) error); ok {
		r1 = rf(ctx, p, mode)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// AggregateStore_QueryAggregates_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'QueryAggregates'
type AggregateStore_QueryAggregates_Call struct {
	*mock.Call
}

// QueryAggregates is a helper method to define mock.On call
//   - ctx context.Context
//   - p report.Predicate
//   - mode report.Mode
func (_e *AggregateStore_Expecter) QueryAggregates(ctx interface{}, p interface{}, mode interface{}) *AggregateStore_QueryAggregates_Call {
	return &AggregateStore_QueryAggregates_Call{Call: _e.mock.On("QueryAggregates", ctx, p, mode)}
}

func (_c *AggregateStore_QueryAggregates_Call) Run(run func(ctx context.Context, p report.Predicate, mode report.Mode)) *AggregateStore_QueryAggregates_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(report.Predicate), args[2].(report.Mode))
	})
	return _c
}

func (_c *AggregateStore_QueryAggregates_Call) Return(_a0 []report.Row, _a1 error) *AggregateStore_QueryAggregates_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *AggregateStore_QueryAggregates_Call) RunAndReturn(run func(context.Context, report.Predicate, report.Mode) ([]report.Row, error)) *AggregateStore_QueryAggregates_Call {
	_c.Call.Return(run)
	return _c
}

// NewAggregateStore creates a new instance of AggregateStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewAggregateStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *AggregateStore {
	mock := &AggregateStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
