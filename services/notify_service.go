package services

import (
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/yeremiapane/restaurant-reservation/models"
	"github.com/yeremiapane/restaurant-reservation/utils"
)

// NotifyReservationStatus mengirim email ke customer setelah admin
// mengubah status reservasinya. Tanpa SENDGRID_API_KEY fungsi ini
// jadi no-op supaya development lokal tidak butuh kredensial.
func NotifyReservationStatus(reservation models.Reservation) {
	if os.Getenv("SENDGRID_API_KEY") == "" {
		return
	}

	var subject, body string
	switch reservation.Status {
	case models.ReservationConfirmed:
		subject = fmt.Sprintf("Your reservation %s is confirmed", reservation.Code)
		body = fmt.Sprintf(
			"Hello %s,\n\nYour table reservation has been confirmed.\n\n"+
				"Reservation code: %s\nDate: %s\nTime: %s - %s\n\n"+
				"We look forward to seeing you.",
			reservation.UserName, reservation.Code,
			reservation.Date, reservation.StartTime, reservation.EndTime,
		)
	case models.ReservationDeclined:
		subject = fmt.Sprintf("Your reservation %s was declined", reservation.Code)
		body = fmt.Sprintf(
			"Hello %s,\n\nUnfortunately we could not accommodate your reservation "+
				"for %s (%s - %s). Please pick another table or time.\n\n"+
				"Reservation code: %s",
			reservation.UserName, reservation.Date,
			reservation.StartTime, reservation.EndTime, reservation.Code,
		)
	default:
		return
	}

	if err := sendEmail(reservation.UserEmail, reservation.UserName, subject, body); err != nil {
		utils.ErrorLogger.Printf("Failed to send status email for reservation %s: %v",
			reservation.Code, err)
	}
}

func sendEmail(toEmail, toName, subject, body string) error {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	fromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	if fromEmail == "" {
		return fmt.Errorf("SENDGRID_FROM_EMAIL not set")
	}
	fromName := os.Getenv("SENDGRID_FROM_NAME")
	if fromName == "" {
		fromName = "Restaurant Reservations"
	}

	from := mail.NewEmail(fromName, fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, body)

	client := sendgrid.NewSendClient(apiKey)
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}

	utils.InfoLogger.Printf("Status email sent to %s (%s)", toEmail, subject)
	return nil
}
