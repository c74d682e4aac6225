package handler

import (
	"petwell_client/api"
	"petwell_client/helper"
	"petwell_client/model"
	"petwell_client/store"
	"petwell_client/utils"

	"github.com/gofiber/fiber/v2"
)

// GetComments thay trọn cây bình luận của một bài viết trong cache
func GetComments(c *fiber.Ctx) error {
	claim := helper.GetUserFromToken(c)
	token := helper.BearerToken(c)
	ctx := c.Context()
	postID := c.Params("postId")

	store.Mgr.Update(ctx, claim.UserId, func(s *store.Store) {
		s.Comments.SetLoading(true)
	})
	defer store.Mgr.Update(ctx, claim.UserId, func(s *store.Store) {
		s.Comments.SetLoading(false)
	})

	tree, err := api.PetWell.FetchCommentsByPost(ctx, token, postID)
	if err != nil {
		store.Mgr.Update(ctx, claim.UserId, func(s *store.Store) {
			s.Comments.SetError(postID, api.UserMessage(err))
		})
		return upstreamError(c, err)
	}

	store.Mgr.Update(ctx, claim.UserId, func(s *store.Store) {
		s.Comments.SetComments(postID, tree)
	})

	return utils.SuccessResponse(c, fiber.StatusOK, tree)
}

// AddComment gửi bình luận lên server; bản trả về được nối vào cuối danh
// sách gốc của bài viết (reply lồng sâu do server gắn parent khi fetch lại)
func AddComment(c *fiber.Ctx) error {
	claim := helper.GetUserFromToken(c)
	token := helper.BearerToken(c)
	ctx := c.Context()
	postID := c.Params("postId")

	input := c.Locals("commentInput").(model.AddCommentInput)

	cmt, err := api.PetWell.AddComment(ctx, token, postID, input)
	if err != nil {
		return upstreamError(c, err)
	}

	store.Mgr.Update(ctx, claim.UserId, func(s *store.Store) {
		s.Comments.AddComment(postID, cmt)
	})

	return utils.SuccessResponse(c, fiber.StatusCreated, cmt)
}

// ReactComment vá đúng một nút trong cây sau khi server nhận cảm xúc
func ReactComment(c *fiber.Ctx) error {
	claim := helper.GetUserFromToken(c)
	token := helper.BearerToken(c)
	ctx := c.Context()
	postID := c.Params("postId")
	commentID := c.Params("commentId")

	input := c.Locals("reactInput").(model.ReactInput)

	sum, err := api.PetWell.ReactComment(ctx, token, commentID, input.Reaction)
	if err != nil {
		return upstreamError(c, err)
	}

	store.Mgr.Update(ctx, claim.UserId, func(s *store.Store) {
		s.Comments.ReactToComment(postID, commentID, sum)
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"reactions": sum,
	})
}

// UpdateComment sửa nội dung một bình luận, các nhánh khác giữ nguyên
func UpdateComment(c *fiber.Ctx) error {
	claim := helper.GetUserFromToken(c)
	token := helper.BearerToken(c)
	ctx := c.Context()
	postID := c.Params("postId")
	commentID := c.Params("commentId")

	input := c.Locals("updateCommentInput").(model.UpdateCommentInput)

	if err := api.PetWell.UpdateComment(ctx, token, commentID, input.Content); err != nil {
		return upstreamError(c, err)
	}

	store.Mgr.Update(ctx, claim.UserId, func(s *store.Store) {
		s.Comments.UpdateCommentContent(postID, commentID, input.Content)
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"id":      commentID,
		"content": input.Content,
	})
}

// DeleteComment gỡ một bình luận ở độ sâu bất kỳ, giữ thứ tự phần còn lại
func DeleteComment(c *fiber.Ctx) error {
	claim := helper.GetUserFromToken(c)
	token := helper.BearerToken(c)
	ctx := c.Context()
	postID := c.Params("postId")
	commentID := c.Params("commentId")

	if err := api.PetWell.DeleteComment(ctx, token, commentID); err != nil {
		return upstreamError(c, err)
	}

	store.Mgr.Update(ctx, claim.UserId, func(s *store.Store) {
		s.Comments.DeleteComment(postID, commentID)
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"id": commentID,
	})
}
