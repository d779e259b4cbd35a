package api

import (
	"go.uber.org/fx"

	"github.com/RakshithaNagaraju74/MedWell/ai"
	"github.com/RakshithaNagaraju74/MedWell/auth"
	"github.com/RakshithaNagaraju74/MedWell/documents"
	"github.com/RakshithaNagaraju74/MedWell/lifestyle"
	"github.com/RakshithaNagaraju74/MedWell/medicines"
	"github.com/RakshithaNagaraju74/MedWell/prescriptions"
	"github.com/RakshithaNagaraju74/MedWell/reminders"
	"github.com/RakshithaNagaraju74/MedWell/symptomlog"
	"github.com/RakshithaNagaraju74/MedWell/users"
	"github.com/RakshithaNagaraju74/MedWell/vitals"
)

type Handler struct {
	users         users.Service
	reminders     reminders.Service
	prescriptions prescriptions.Service
	medicines     medicines.Service
	documents     documents.Service
	storage       *documents.Storage
	vitals        vitals.Service
	symptoms      symptomlog.Service
	lifestyle     lifestyle.Service
	auth          auth.Service
	ai            ai.Client
}

type Params struct {
	fx.In

	Users         users.Service
	Reminders     reminders.Service
	Prescriptions prescriptions.Service
	Medicines     medicines.Service
	Documents     documents.Service
	Storage       *documents.Storage
	Vitals        vitals.Service
	Symptoms      symptomlog.Service
	Lifestyle     lifestyle.Service
	Auth          auth.Service
	Ai            ai.Client
}

func NewHandler(p Params) *Handler {
	return &Handler{
		users:         p.Users,
		reminders:     p.Reminders,
		prescriptions: p.Prescriptions,
		medicines:     p.Medicines,
		documents:     p.Documents,
		storage:       p.Storage,
		vitals:        p.Vitals,
		symptoms:      p.Symptoms,
		lifestyle:     p.Lifestyle,
		auth:          p.Auth,
		ai:            p.Ai,
	}
}
