package mailer

import (
	"fmt"
	"time"
)

const dateLayout = "Mon, 02 Jan 2006"

func ConfirmationHTML(name, bookingNumber, roomNumber string, checkIn, checkOut time.Time, amount float64) string {
	return fmt.Sprintf(`
		<h2>Booking Confirmed</h2>
		<p>Dear %s,</p>
		<p>Your reservation <b>%s</b> is confirmed.</p>
		<ul>
			<li>Room: <b>%s</b></li>
			<li>Check-in: %s</li>
			<li>Check-out: %s</li>
			<li>Total: %.2f</li>
		</ul>
		<p>Your receipt is attached. Present the QR code at the front desk.</p>
	`, name, bookingNumber, roomNumber, checkIn.Format(dateLayout), checkOut.Format(dateLayout), amount)
}

func CancellationHTML(name, bookingNumber string) string {
	return fmt.Sprintf(`
		<h2>Booking Cancelled</h2>
		<p>Dear %s,</p>
		<p>Your reservation <b>%s</b> has been cancelled.</p>
		<p>If this was a mistake, please contact the front desk.</p>
	`, name, bookingNumber)
}

func WelcomeHTML(name, roomNumber string, checkOut time.Time) string {
	return fmt.Sprintf(`
		<h2>Welcome!</h2>
		<p>Dear %s,</p>
		<p>You are checked in to room <b>%s</b>.</p>
		<p>Check-out is on %s. Enjoy your stay.</p>
	`, name, roomNumber, checkOut.Format(dateLayout))
}
