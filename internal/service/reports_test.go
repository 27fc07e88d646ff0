package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shenikar/civic_guardian/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 15, 30, 0, 0, time.UTC)
}

func datePtr(s string) *string { return &s }

func TestFilterReports(t *testing.T) {
	reports := []models.Report{
		{ID: 1, Category: models.CategoryTheft, Date: datePtr("2024-05-01"), CreatedAt: day(2024, 6, 1)},
		{ID: 2, Category: models.CategoryHazard, CreatedAt: day(2024, 5, 10)},
		{ID: 3, Category: models.CategoryTheft, Date: datePtr("last tuesday"), CreatedAt: day(2024, 1, 1)},
		{ID: 4, Category: models.CategoryTheft, Date: datePtr("2024-04-30"), CreatedAt: day(2024, 5, 2)},
	}
	theft := models.CategoryTheft
	from := day(2024, 5, 1)
	to := day(2024, 5, 10)

	tests := []struct {
		name   string
		filter ReportFilter
		want   []int64
	}{
		{name: "no filter", filter: ReportFilter{}, want: []int64{1, 2, 3, 4}},
		{name: "category", filter: ReportFilter{Category: &theft}, want: []int64{1, 3, 4}},
		// дата из поля date важнее created_at, нераспознанная дата проходит
		{name: "date range", filter: ReportFilter{From: &from, To: &to}, want: []int64{1, 2, 3}},
		{name: "category and range", filter: ReportFilter{Category: &theft, From: &from, To: &to}, want: []int64{1, 3}},
		{name: "open start", filter: ReportFilter{To: &from}, want: []int64{1, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterReports(reports, tt.filter)
			ids := make([]int64, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestNewestReports(t *testing.T) {
	base := day(2024, 5, 1)
	var reports []models.Report
	for i := 1; i <= 7; i++ {
		reports = append(reports, models.Report{ID: int64(i), CreatedAt: base.Add(time.Duration(i) * time.Hour)})
	}
	// одинаковое время: новее тот, у кого больше id
	reports = append(reports, models.Report{ID: 8, CreatedAt: base.Add(7 * time.Hour)})

	got := NewestReports(reports, 5)

	ids := make([]int64, 0, len(got))
	for _, r := range got {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int64{8, 7, 6, 5, 4}, ids)
	assert.Equal(t, int64(1), reports[0].ID)
	assert.Len(t, NewestReports(reports[:2], 5), 2)
}

func TestValidatePhoto(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}

	assert.NoError(t, validatePhoto(nil, nil))
	assert.NoError(t, validatePhoto(png, datePtr("a.png")))
	assert.Error(t, validatePhoto(png, nil))
	assert.Error(t, validatePhoto(png, datePtr("a.bmp")))
	assert.Error(t, validatePhoto([]byte("GIF89a"), datePtr("a.jpg")))
}
