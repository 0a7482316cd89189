package events

import (
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"greenhill-schools/app/config"
	"greenhill-schools/app/database"
	"greenhill-schools/app/models"
)

var validate = validator.New()

func GetEventsAPI(c *fiber.Ctx) error {
	var from, to time.Time
	if v := c.Query("from"); v != "" {
		from, _ = time.Parse("2006-01-02", v)
	}
	if v := c.Query("to"); v != "" {
		to, _ = time.Parse("2006-01-02", v)
	}

	events, err := database.GetEvents(config.GetDB(), from, to)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch events"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"events":  events,
		"count":   len(events),
	})
}

func CreateEventAPI(c *fiber.Ctx) error {
	var event models.Event
	if err := c.BodyParser(&event); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(event); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if event.EndDate.Before(event.StartDate) {
		return c.Status(400).JSON(fiber.Map{"error": "End date cannot be before start date"})
	}

	if err := database.CreateEvent(config.GetDB(), &event); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create event"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "event": event})
}

func UpdateEventAPI(c *fiber.Ctx) error {
	var event models.Event
	if err := c.BodyParser(&event); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	event.ID = c.Params("id")

	if err := database.UpdateEvent(config.GetDB(), &event); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Event not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update event"})
	}

	return c.JSON(fiber.Map{"success": true, "event": event})
}

func DeleteEventAPI(c *fiber.Ctx) error {
	if err := database.DeleteEvent(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete event"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Event deleted"})
}
