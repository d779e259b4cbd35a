package api_test

import (
	"context"

	"github.com/RakshithaNagaraju74/MedWell/auth"
	"github.com/RakshithaNagaraju74/MedWell/lifestyle"
	"github.com/RakshithaNagaraju74/MedWell/medicines"
	"github.com/RakshithaNagaraju74/MedWell/prescriptions"
	"github.com/RakshithaNagaraju74/MedWell/reminders"
	"github.com/RakshithaNagaraju74/MedWell/symptomlog"
	"github.com/RakshithaNagaraju74/MedWell/users"
	"github.com/RakshithaNagaraju74/MedWell/vitals"
)

type usersStub struct {
	get    func(ctx context.Context, userId string) (*users.User, error)
	upsert func(ctx context.Context, user users.User) (*users.User, error)
	update func(ctx context.Context, userId string, attributes map[string]interface{}) (*users.User, error)
}

func (s *usersStub) Get(ctx context.Context, userId string) (*users.User, error) {
	return s.get(ctx, userId)
}

func (s *usersStub) Upsert(ctx context.Context, user users.User) (*users.User, error) {
	return s.upsert(ctx, user)
}

func (s *usersStub) Update(ctx context.Context, userId string, attributes map[string]interface{}) (*users.User, error) {
	return s.update(ctx, userId, attributes)
}

type remindersStub struct {
	list   func(ctx context.Context, userId string) ([]*reminders.Reminder, error)
	create func(ctx context.Context, reminder reminders.Reminder) (*reminders.Reminder, error)
}

func (s *remindersStub) List(ctx context.Context, userId string) ([]*reminders.Reminder, error) {
	return s.list(ctx, userId)
}

func (s *remindersStub) Create(ctx context.Context, reminder reminders.Reminder) (*reminders.Reminder, error) {
	return s.create(ctx, reminder)
}

type authStub struct {
	register func(ctx context.Context, userId string, email string, password string) (*auth.Session, error)
	login    func(ctx context.Context, email string, password string) (*auth.Session, error)
}

func (s *authStub) Register(ctx context.Context, userId string, email string, password string) (*auth.Session, error) {
	return s.register(ctx, userId, email, password)
}

func (s *authStub) Login(ctx context.Context, email string, password string) (*auth.Session, error) {
	return s.login(ctx, email, password)
}

type medicinesStub struct {
	list   func(ctx context.Context, userId string) ([]*medicines.Medicine, error)
	create func(ctx context.Context, medicine medicines.Medicine) (*medicines.Medicine, error)
	update func(ctx context.Context, userId string, id string, update medicines.Update) (*medicines.Medicine, error)
	delete func(ctx context.Context, userId string, id string) error
}

func (s *medicinesStub) List(ctx context.Context, userId string) ([]*medicines.Medicine, error) {
	return s.list(ctx, userId)
}

func (s *medicinesStub) Create(ctx context.Context, medicine medicines.Medicine) (*medicines.Medicine, error) {
	return s.create(ctx, medicine)
}

func (s *medicinesStub) Update(ctx context.Context, userId string, id string, update medicines.Update) (*medicines.Medicine, error) {
	return s.update(ctx, userId, id, update)
}

func (s *medicinesStub) Delete(ctx context.Context, userId string, id string) error {
	return s.delete(ctx, userId, id)
}

type prescriptionsStub struct {
	list   func(ctx context.Context, userId string) ([]*prescriptions.Prescription, error)
	create func(ctx context.Context, prescription prescriptions.Prescription) (*prescriptions.Prescription, error)
	delete func(ctx context.Context, userId string, id string) error
}

func (s *prescriptionsStub) List(ctx context.Context, userId string) ([]*prescriptions.Prescription, error) {
	return s.list(ctx, userId)
}

func (s *prescriptionsStub) Create(ctx context.Context, prescription prescriptions.Prescription) (*prescriptions.Prescription, error) {
	return s.create(ctx, prescription)
}

func (s *prescriptionsStub) Delete(ctx context.Context, userId string, id string) error {
	return s.delete(ctx, userId, id)
}

type vitalsStub struct {
	list   func(ctx context.Context, filter vitals.Filter) ([]*vitals.Reading, error)
	create func(ctx context.Context, reading vitals.Reading) (*vitals.Reading, error)
}

func (s *vitalsStub) List(ctx context.Context, filter vitals.Filter) ([]*vitals.Reading, error) {
	return s.list(ctx, filter)
}

func (s *vitalsStub) Create(ctx context.Context, reading vitals.Reading) (*vitals.Reading, error) {
	return s.create(ctx, reading)
}

type symptomsStub struct {
	list   func(ctx context.Context, userId string) ([]*symptomlog.Entry, error)
	create func(ctx context.Context, entry symptomlog.Entry) (*symptomlog.Entry, error)
}

func (s *symptomsStub) List(ctx context.Context, userId string) ([]*symptomlog.Entry, error) {
	return s.list(ctx, userId)
}

func (s *symptomsStub) Create(ctx context.Context, entry symptomlog.Entry) (*symptomlog.Entry, error) {
	return s.create(ctx, entry)
}

type lifestyleStub struct {
	listActivity   func(ctx context.Context, userId string) ([]*lifestyle.ActivityLog, error)
	createActivity func(ctx context.Context, log lifestyle.ActivityLog) (*lifestyle.ActivityLog, error)
	listSleep      func(ctx context.Context, userId string) ([]*lifestyle.SleepLog, error)
	createSleep    func(ctx context.Context, log lifestyle.SleepLog) (*lifestyle.SleepLog, error)
}

func (s *lifestyleStub) ListActivity(ctx context.Context, userId string) ([]*lifestyle.ActivityLog, error) {
	return s.listActivity(ctx, userId)
}

func (s *lifestyleStub) CreateActivity(ctx context.Context, log lifestyle.ActivityLog) (*lifestyle.ActivityLog, error) {
	return s.createActivity(ctx, log)
}

func (s *lifestyleStub) ListSleep(ctx context.Context, userId string) ([]*lifestyle.SleepLog, error) {
	return s.listSleep(ctx, userId)
}

func (s *lifestyleStub) CreateSleep(ctx context.Context, log lifestyle.SleepLog) (*lifestyle.SleepLog, error) {
	return s.createSleep(ctx, log)
}
