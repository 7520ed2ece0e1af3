package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
)

func TestCalculateCompletion(t *testing.T) {
	dob := time.Date(1998, 5, 10, 0, 0, 0, 0, time.UTC)
	height, weight := 175, 62
	full := &models.TalentProfile{
		FirstName:   "Ada",
		LastName:    "Talent",
		DateOfBirth: &dob,
		Gender:      "female",
		City:        "Lagos",
		Bio:         "Actress and model",
		AvatarURL:   "https://files.example.com/ada.jpg",
		HeightCm:    &height,
		WeightKg:    &weight,
		EyeColor:    "brown",
		HairColor:   "black",
		Skills:      datatypes.JSONSlice[string]{"acting"},
		Languages:   datatypes.JSONSlice[string]{"English"},
		Categories:  datatypes.JSONSlice[string]{"film"},
	}

	tests := []struct {
		name      string
		profile   *models.TalentProfile
		portfolio int64
		want      int
	}{
		{"пустой профиль", &models.TalentProfile{}, 0, 0},
		{"одно поле из 15", &models.TalentProfile{FirstName: "Ada"}, 0, 6},
		{"только портфолио", &models.TalentProfile{}, 3, 6},
		{"все кроме портфолио", full, 0, 93},
		{"полный профиль", full, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateCompletion(tt.profile, tt.portfolio))
		})
	}
}
