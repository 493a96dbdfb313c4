package store

import "salonkit/models"

// LoadProducts refreshes the product list.
func (s *AppStore) LoadProducts() {
	s.setState(func(st *State) { st.ProductLoading = true; st.ProductError = "" })
	products, err := s.Inventory.GetAllProducts()
	if err != nil {
		s.report("loadProducts", err)
		s.setState(func(st *State) { st.ProductError = err.Error(); st.ProductLoading = false })
		return
	}
	s.setState(func(st *State) { st.Products = products; st.ProductLoading = false })
}

// CreateProduct inserts a product and appends it to the list.
func (s *AppStore) CreateProduct(input models.ProductInput) (*models.Product, error) {
	s.setState(func(st *State) { st.ProductLoading = true; st.ProductError = "" })
	created, err := s.Inventory.CreateProduct(input)
	if err != nil {
		s.report("createProduct", err)
		s.setState(func(st *State) { st.ProductError = err.Error(); st.ProductLoading = false })
		return nil, err
	}
	s.setState(func(st *State) {
		st.Products = append(st.Products, *created)
		st.ProductLoading = false
	})
	return created, nil
}

// UpdateProduct merges fields into a product record.
func (s *AppStore) UpdateProduct(id string, fields map[string]any) (*models.Product, error) {
	s.setState(func(st *State) { st.ProductLoading = true; st.ProductError = "" })
	updated, err := s.Inventory.UpdateProduct(id, fields)
	if err != nil {
		s.report("updateProduct", err)
		s.setState(func(st *State) { st.ProductError = err.Error(); st.ProductLoading = false })
		return nil, err
	}
	s.replaceProduct(updated)
	return updated, nil
}

// AdjustStock applies a stock delta and refreshes the dashboard, whose
// low-stock count may have changed.
func (s *AppStore) AdjustStock(id string, delta int) (*models.Product, error) {
	s.setState(func(st *State) { st.ProductLoading = true; st.ProductError = "" })
	updated, err := s.Inventory.AdjustStock(id, delta)
	if err != nil {
		s.report("adjustStock", err)
		s.setState(func(st *State) { st.ProductError = err.Error(); st.ProductLoading = false })
		return nil, err
	}
	s.replaceProduct(updated)
	s.LoadDashboard()
	return updated, nil
}

// DeleteProduct removes a product record.
func (s *AppStore) DeleteProduct(id string) error {
	s.setState(func(st *State) { st.ProductLoading = true; st.ProductError = "" })
	if err := s.Inventory.DeleteProduct(id); err != nil {
		s.report("deleteProduct", err)
		s.setState(func(st *State) { st.ProductError = err.Error(); st.ProductLoading = false })
		return err
	}
	s.setState(func(st *State) {
		kept := st.Products[:0]
		for _, p := range st.Products {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		st.Products = kept
		st.ProductLoading = false
	})
	return nil
}

func (s *AppStore) replaceProduct(updated *models.Product) {
	s.setState(func(st *State) {
		for i := range st.Products {
			if st.Products[i].ID == updated.ID {
				st.Products[i] = *updated
			}
		}
		st.ProductLoading = false
	})
}
