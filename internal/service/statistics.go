package service

import "medpractice/doctor-dashboard/internal/domain"

// monthlyAdmissions is static demo data for the admissions chart; it is not derived from patients.
var monthlyAdmissions = [12]int{20, 25, 18, 30, 28, 22, 27, 35, 31, 29, 26, 24}

// GetStatistics derives the dashboard counters from the current patient list.
func (s *Store) GetStatistics() domain.Statistics {
	s.mu.RLock()
	patients := s.patients.List()
	s.mu.RUnlock()

	stats := domain.Statistics{
		TotalPatients:     len(patients),
		MonthlyAdmissions: append([]int(nil), monthlyAdmissions[:]...),
	}
	for _, p := range patients {
		switch p.Status {
		case domain.StatusRecovered:
			stats.Recovered++
		case domain.StatusInOperation:
			stats.Operation++
		}
	}
	stats.UnderTreatment = stats.TotalPatients - stats.Recovered - stats.Operation
	return stats
}
