package store

// LoadDashboard refreshes the dashboard snapshot.
func (s *AppStore) LoadDashboard() {
	s.setState(func(st *State) { st.DashboardLoading = true; st.DashboardError = "" })
	summary, err := s.Dashboard.GetDashboardSummary()
	if err != nil {
		s.report("loadDashboard", err)
		s.setState(func(st *State) { st.DashboardError = err.Error(); st.DashboardLoading = false })
		return
	}
	s.setState(func(st *State) { st.Dashboard = summary; st.DashboardLoading = false })
}
