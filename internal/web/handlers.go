package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rotaboard/internal/residents"
	"rotaboard/internal/rota"
	"rotaboard/internal/stats"
	"rotaboard/internal/timeline"
)

func (s *Server) handleSchedule(c *gin.Context) {
	c.JSON(http.StatusOK, rota.ScheduleDocument{Schedule: s.snap.Schedule})
}

func (s *Server) handleScheduleDates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"dates": s.snap.Dates()})
}

// categoryFilter validates the ?filter= query parameter, defaulting to
// "all".
func categoryFilter(c *gin.Context) (rota.Category, bool) {
	filter := rota.Category(c.DefaultQuery("filter", string(rota.CategoryAll)))
	if !filter.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category filter: " + string(filter)})
		return "", false
	}
	return filter, true
}

func (s *Server) handleTimeline(c *gin.Context) {
	day, ok := s.snap.Day(c.Param("date"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no schedule for date " + c.Param("date")})
		return
	}
	filter, ok := categoryFilter(c)
	if !ok {
		return
	}

	rows := timeline.BuildLayout(day, filter, timeline.LayoutOptions{})
	c.JSON(http.StatusOK, gin.H{
		"date":    day.Date,
		"summary": stats.SummarizeDay(day),
		"rows":    rows,
	})
}

func (s *Server) handleOnDuty(c *gin.Context) {
	day, ok := s.snap.Day(c.Param("date"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no schedule for date " + c.Param("date")})
		return
	}
	filter, ok := categoryFilter(c)
	if !ok {
		return
	}

	hour, err := strconv.Atoi(c.DefaultQuery("hour", "0"))
	if err != nil || hour < 0 || hour > 23 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hour must be 0-23"})
		return
	}
	minute, err := strconv.Atoi(c.DefaultQuery("minute", "0"))
	if err != nil || minute < 0 || minute > 59 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "minute must be 0-59"})
		return
	}

	doctors := timeline.ActiveDoctors(day, timeline.ClockTime{Hour: hour, Minute: minute}, filter)
	c.JSON(http.StatusOK, gin.H{
		"date":    day.Date,
		"count":   len(doctors),
		"doctors": doctors,
	})
}

func (s *Server) handleDutyStats(c *gin.Context) {
	filter, ok := categoryFilter(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"filter": filter,
		"duties": stats.CountDuties(s.snap.Schedule, filter),
	})
}

func (s *Server) handleWeekendStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"duties": stats.WeekendDuties(s.snap.Schedule)})
}

func (s *Server) handleStreakStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"streaks": stats.ConsecutiveStreaks(s.snap.Schedule)})
}

// residentFilter binds the conjunctive resident filter from the query
// string.
func residentFilter(c *gin.Context) residents.Filter {
	return residents.Filter{
		Year:         c.Query("year"),
		RotationType: c.Query("type"),
		Hospital:     c.Query("hospital"),
	}
}

func (s *Server) handleResidents(c *gin.Context) {
	filtered := residents.Apply(s.residents, residentFilter(c))
	c.JSON(http.StatusOK, gin.H{"residents": filtered})
}

func (s *Server) handleResidentFilters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"years":     residents.Years(s.residents),
		"types":     residents.CountByType(s.residents),
		"hospitals": residents.CountByHospital(s.residents),
	})
}

func (s *Server) handleResidentSummary(c *gin.Context) {
	filtered := residents.Apply(s.residents, residentFilter(c))
	c.JSON(http.StatusOK, residents.Summarize(filtered))
}

func (s *Server) handleResidentDistributions(c *gin.Context) {
	filtered := residents.Apply(s.residents, residentFilter(c))
	monthly := residents.MonthlyStarts(filtered)
	c.JSON(http.StatusOK, gin.H{
		"byType":        residents.CountByType(filtered),
		"byHospital":    residents.CountByHospital(filtered),
		"monthlyStarts": monthly[:],
		"durationBuckets": gin.H{
			"labels": residents.DurationBucketLabels,
			"counts": residents.DurationBuckets(filtered),
		},
	})
}

func (s *Server) handleResidentExport(c *gin.Context) {
	filtered := residents.Apply(s.residents, residentFilter(c))
	c.Header("Content-Disposition", `attachment; filename="residents_data.csv"`)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	if err := residents.WriteCSV(c.Writer, filtered); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}
