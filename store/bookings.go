package store

import "salonkit/models"

// LoadBookings refreshes the booking list.
func (s *AppStore) LoadBookings() {
	s.setState(func(st *State) { st.BookingLoading = true; st.BookingError = "" })
	views, err := s.Bookings.GetAllBookings()
	if err != nil {
		s.report("loadBookings", err)
		s.setState(func(st *State) { st.BookingError = err.Error(); st.BookingLoading = false })
		return
	}
	s.setState(func(st *State) { st.Bookings = views; st.BookingLoading = false })
}

// CreateBooking runs the creation workflow and refreshes the dependent
// customer and dashboard state; visit stats are computed from bookings, so
// a new booking can change them.
func (s *AppStore) CreateBooking(input models.BookingInput) (*models.BookingView, error) {
	s.setState(func(st *State) { st.BookingLoading = true; st.BookingError = "" })
	view, err := s.Bookings.CreateBooking(input)
	if err != nil {
		s.report("createBooking", err)
		s.setState(func(st *State) { st.BookingError = err.Error(); st.BookingLoading = false })
		return nil, err
	}
	s.setState(func(st *State) {
		st.Bookings = append(st.Bookings, *view)
		st.BookingLoading = false
	})
	s.refreshDependents()
	return view, nil
}

// UpdateBookingStatus transitions a booking and refreshes dependents.
func (s *AppStore) UpdateBookingStatus(id, status string) (*models.Booking, error) {
	s.setState(func(st *State) { st.BookingLoading = true; st.BookingError = "" })
	updated, err := s.Bookings.UpdateBookingStatus(id, status)
	if err != nil {
		s.report("updateBookingStatus", err)
		s.setState(func(st *State) { st.BookingError = err.Error(); st.BookingLoading = false })
		return nil, err
	}
	s.setState(func(st *State) {
		for i := range st.Bookings {
			if st.Bookings[i].ID == id {
				st.Bookings[i].Booking = *updated
			}
		}
		st.BookingLoading = false
	})
	s.refreshDependents()
	return updated, nil
}

// DeleteBooking removes a booking (and its lines) and refreshes dependents.
func (s *AppStore) DeleteBooking(id string) error {
	s.setState(func(st *State) { st.BookingLoading = true; st.BookingError = "" })
	if err := s.Bookings.DeleteBooking(id); err != nil {
		s.report("deleteBooking", err)
		s.setState(func(st *State) { st.BookingError = err.Error(); st.BookingLoading = false })
		return err
	}
	s.setState(func(st *State) {
		kept := st.Bookings[:0]
		for _, b := range st.Bookings {
			if b.ID != id {
				kept = append(kept, b)
			}
		}
		st.Bookings = kept
		st.BookingLoading = false
	})
	s.refreshDependents()
	return nil
}

// refreshDependents reloads the state derived from bookings.
func (s *AppStore) refreshDependents() {
	s.LoadCustomers()
	s.LoadDashboard()
}
