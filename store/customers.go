package store

import "salonkit/models"

// LoadCustomers refreshes the enriched customer list.
func (s *AppStore) LoadCustomers() {
	s.setState(func(st *State) { st.CustomerLoading = true; st.CustomerError = "" })
	views, err := s.Customers.GetAllCustomers()
	if err != nil {
		s.report("loadCustomers", err)
		s.setState(func(st *State) { st.CustomerError = err.Error(); st.CustomerLoading = false })
		return
	}
	s.setState(func(st *State) { st.Customers = views; st.CustomerLoading = false })
}

// CreateCustomer inserts a customer and appends it to the list.
func (s *AppStore) CreateCustomer(input models.CustomerInput) (*models.Customer, error) {
	s.setState(func(st *State) { st.CustomerLoading = true; st.CustomerError = "" })
	created, err := s.Customers.CreateCustomer(input)
	if err != nil {
		s.report("createCustomer", err)
		s.setState(func(st *State) { st.CustomerError = err.Error(); st.CustomerLoading = false })
		return nil, err
	}
	s.setState(func(st *State) {
		st.Customers = append(st.Customers, models.CustomerView{Customer: *created})
		st.CustomerLoading = false
	})
	return created, nil
}

// UpdateCustomer merges fields into a customer record.
func (s *AppStore) UpdateCustomer(id string, fields map[string]any) (*models.Customer, error) {
	s.setState(func(st *State) { st.CustomerLoading = true; st.CustomerError = "" })
	updated, err := s.Customers.UpdateCustomer(id, fields)
	if err != nil {
		s.report("updateCustomer", err)
		s.setState(func(st *State) { st.CustomerError = err.Error(); st.CustomerLoading = false })
		return nil, err
	}
	s.setState(func(st *State) {
		for i := range st.Customers {
			if st.Customers[i].ID == id {
				st.Customers[i].Customer = *updated
			}
		}
		st.CustomerLoading = false
	})
	return updated, nil
}

// DeleteCustomer removes a customer record.
func (s *AppStore) DeleteCustomer(id string) error {
	s.setState(func(st *State) { st.CustomerLoading = true; st.CustomerError = "" })
	if err := s.Customers.DeleteCustomer(id); err != nil {
		s.report("deleteCustomer", err)
		s.setState(func(st *State) { st.CustomerError = err.Error(); st.CustomerLoading = false })
		return err
	}
	s.setState(func(st *State) {
		kept := st.Customers[:0]
		for _, c := range st.Customers {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		st.Customers = kept
		st.CustomerLoading = false
	})
	return nil
}

// SearchCustomers replaces the customer list with the matches.
func (s *AppStore) SearchCustomers(query string) {
	s.setState(func(st *State) { st.CustomerLoading = true; st.CustomerError = "" })
	views, err := s.Customers.SearchCustomers(query)
	if err != nil {
		s.report("searchCustomers", err)
		s.setState(func(st *State) { st.CustomerError = err.Error(); st.CustomerLoading = false })
		return
	}
	s.setState(func(st *State) { st.Customers = views; st.CustomerLoading = false })
}
