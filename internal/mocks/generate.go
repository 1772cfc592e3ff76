package mocks

//go:generate mockery --name AggregateStore --srcpkg github.com/bonitofshh/MCO1-STADVDB/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name Taxonomy --srcpkg github.com/bonitofshh/MCO1-STADVDB/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
