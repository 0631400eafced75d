package user

type StubService struct {
	ListFunc   func() []User
	FindFunc   func(id string) (User, bool)
	CreateFunc func(params CreateParams) (User, error)
	UpdateFunc func(id string, params UpdateParams) (User, bool)
	DeleteFunc func(id string) bool
}

var _ Service = &StubService{}

func (s *StubService) List() []User {
	if s.ListFunc == nil {
		panic("List() not implemented by stub")
	}
	return s.ListFunc()
}

func (s *StubService) Find(id string) (User, bool) {
	if s.FindFunc == nil {
		panic("Find() not implemented by stub")
	}
	return s.FindFunc(id)
}

func (s *StubService) Create(params CreateParams) (User, error) {
	if s.CreateFunc == nil {
		panic("Create() not implemented by stub")
	}
	return s.CreateFunc(params)
}

func (s *StubService) Update(id string, params UpdateParams) (User, bool) {
	if s.UpdateFunc == nil {
		panic("Update() not implemented by stub")
	}
	return s.UpdateFunc(id, params)
}

func (s *StubService) Delete(id string) bool {
	if s.DeleteFunc == nil {
		panic("Delete() not implemented by stub")
	}
	return s.DeleteFunc(id)
}
