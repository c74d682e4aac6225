package validate

import (
	"petwell_client/model"

	"github.com/gofiber/fiber/v2"
)

func React() fiber.Handler {
	return body[model.ReactInput]("reactInput")
}

func AddComment() fiber.Handler {
	return body[model.AddCommentInput]("commentInput")
}

func UpdateComment() fiber.Handler {
	return body[model.UpdateCommentInput]("updateCommentInput")
}
