package store

import "salonkit/models"

// LoadServices refreshes the treatment catalog.
func (s *AppStore) LoadServices() {
	s.setState(func(st *State) { st.ServiceLoading = true; st.ServiceError = "" })
	services, err := s.Catalog.GetAllServices()
	if err != nil {
		s.report("loadServices", err)
		s.setState(func(st *State) { st.ServiceError = err.Error(); st.ServiceLoading = false })
		return
	}
	s.setState(func(st *State) { st.Services = services; st.ServiceLoading = false })
}

// CreateService inserts a catalog service and appends it to the list.
func (s *AppStore) CreateService(input models.ServiceInput) (*models.Service, error) {
	s.setState(func(st *State) { st.ServiceLoading = true; st.ServiceError = "" })
	created, err := s.Catalog.CreateService(input)
	if err != nil {
		s.report("createService", err)
		s.setState(func(st *State) { st.ServiceError = err.Error(); st.ServiceLoading = false })
		return nil, err
	}
	s.setState(func(st *State) {
		st.Services = append(st.Services, *created)
		st.ServiceLoading = false
	})
	return created, nil
}

// UpdateService merges fields into a catalog service.
func (s *AppStore) UpdateService(id string, fields map[string]any) (*models.Service, error) {
	s.setState(func(st *State) { st.ServiceLoading = true; st.ServiceError = "" })
	updated, err := s.Catalog.UpdateService(id, fields)
	if err != nil {
		s.report("updateService", err)
		s.setState(func(st *State) { st.ServiceError = err.Error(); st.ServiceLoading = false })
		return nil, err
	}
	s.replaceService(updated)
	return updated, nil
}

// ToggleServiceActive flips a service's active flag.
func (s *AppStore) ToggleServiceActive(id string) (*models.Service, error) {
	s.setState(func(st *State) { st.ServiceLoading = true; st.ServiceError = "" })
	updated, err := s.Catalog.ToggleServiceActive(id)
	if err != nil {
		s.report("toggleServiceActive", err)
		s.setState(func(st *State) { st.ServiceError = err.Error(); st.ServiceLoading = false })
		return nil, err
	}
	s.replaceService(updated)
	return updated, nil
}

// DeleteService removes a catalog service.
func (s *AppStore) DeleteService(id string) error {
	s.setState(func(st *State) { st.ServiceLoading = true; st.ServiceError = "" })
	if err := s.Catalog.DeleteService(id); err != nil {
		s.report("deleteService", err)
		s.setState(func(st *State) { st.ServiceError = err.Error(); st.ServiceLoading = false })
		return err
	}
	s.setState(func(st *State) {
		kept := st.Services[:0]
		for _, svc := range st.Services {
			if svc.ID != id {
				kept = append(kept, svc)
			}
		}
		st.Services = kept
		st.ServiceLoading = false
	})
	return nil
}

func (s *AppStore) replaceService(updated *models.Service) {
	s.setState(func(st *State) {
		for i := range st.Services {
			if st.Services[i].ID == updated.ID {
				st.Services[i] = *updated
			}
		}
		st.ServiceLoading = false
	})
}
