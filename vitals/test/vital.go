package test

import (
	"strconv"
	"time"

	"github.com/RakshithaNagaraju74/MedWell/test"
	"github.com/RakshithaNagaraju74/MedWell/vitals"
)

func RandomReading(userId string, readingType string) vitals.Reading {
	recorded := time.Now().Add(-time.Duration(test.Faker.IntBetween(1, 24*30)) * time.Hour).UTC().Truncate(time.Millisecond)
	return vitals.Reading{
		UserId:     userId,
		Type:       readingType,
		Value:      strconv.Itoa(test.Faker.IntBetween(50, 180)),
		Unit:       test.Faker.RandomStringElement([]string{"bpm", "mmHg", "°C"}),
		RecordedAt: recorded,
	}
}
