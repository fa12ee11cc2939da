package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"dermclinic/internal/i18n"
	"dermclinic/internal/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Seeds a handful of appointment requests and one lead so the dashboard has
// something to show on a fresh install.
func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "dermclinic"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(dbName)

	appointments := []model.Appointment{
		{
			ID:        uuid.New().String(),
			CreatedAt: time.Now().Add(-48 * time.Hour),
			Name:      "Sara Mahmoud",
			Phone:     "+201001234567",
			Email:     "sara.mahmoud@example.com",
			Condition: "acne",
			Preferred: "Sunday afternoon",
			Status:    model.AppointmentContacted,
			Locale:    i18n.LocaleEN,
		},
		{
			ID:        uuid.New().String(),
			CreatedAt: time.Now().Add(-24 * time.Hour),
			Name:      "أحمد علي",
			Phone:     "+201007654321",
			Condition: "hair-loss",
			Preferred: "مساء الثلاثاء",
			Status:    model.AppointmentNew,
			Locale:    i18n.LocaleAR,
		},
		{
			ID:        uuid.New().String(),
			CreatedAt: time.Now().Add(-2 * time.Hour),
			Name:      "Mona Khalil",
			Phone:     "+201009876543",
			Condition: "pigmentation",
			Preferred: "Any weekday morning",
			Status:    model.AppointmentNew,
			Locale:    i18n.LocaleEN,
		},
	}

	appointmentColl := db.Collection("appointments")
	for _, a := range appointments {
		if _, err := appointmentColl.InsertOne(ctx, a); err != nil {
			log.Fatalf("Failed to insert appointment: %v", err)
		}
		fmt.Printf("Seeded appointment %s (%s, %s)\n", a.ID, a.Name, a.Status)
	}

	lead := model.Lead{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().Add(-6 * time.Hour),
		Name:      "Omar Hassan",
		Email:     "omar.hassan@example.com",
		Condition: "eczema",
		Level:     "evaluation",
		Locale:    i18n.LocaleEN,
	}
	if _, err := db.Collection("leads").InsertOne(ctx, lead); err != nil {
		log.Fatalf("Failed to insert lead: %v", err)
	}
	fmt.Printf("Seeded lead %s (%s)\n", lead.ID, lead.Name)

	fmt.Println("Done")
}
