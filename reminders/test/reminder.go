package test

import (
	"time"

	"github.com/RakshithaNagaraju74/MedWell/reminders"
	"github.com/RakshithaNagaraju74/MedWell/test"
)

func RandomReminder(userId string) reminders.Reminder {
	due := time.Now().Add(time.Duration(test.Faker.IntBetween(1, 24*30)) * time.Hour).UTC().Truncate(time.Millisecond)
	return reminders.Reminder{
		UserId:      userId,
		Title:       test.Faker.Lorem().Sentence(3),
		DueDate:     due,
		Description: test.Faker.Lorem().Sentence(6),
	}
}
