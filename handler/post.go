package handler

import (
	"encoding/json"
	"io"
	"time"

	"petwell_client/api"
	"petwell_client/helper"
	"petwell_client/model"
	"petwell_client/store"
	"petwell_client/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
)

// GetPosts trả bài viết của một chuyên mục, chỉ fetch lại khi luật
// staleness bảo phải fetch (cờ needRefresh, mảng rỗng, hoặc quá 5 phút)
func GetPosts(c *fiber.Ctx) error {
	category := c.Query("category", model.CategoryForum)
	if category != model.CategoryForum && category != model.CategoryKnowledge {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Chuyên mục không hợp lệ", nil)
	}

	claim := helper.GetUserFromToken(c)
	token := helper.BearerToken(c)
	ctx := c.Context()

	needs := false
	store.Mgr.View(ctx, claim.UserId, func(s *store.Store) {
		needs = store.DefaultPostPolicy.NeedsRefresh(&s.Posts, category, time.Now())
	})

	if !needs {
		var out []model.Post
		store.Mgr.View(ctx, claim.UserId, func(s *store.Store) {
			out = s.Posts.Category(category)
		})
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"posts":  out,
			"cached": true,
		})
	}

	store.Mgr.Update(ctx, claim.UserId, func(s *store.Store) {
		s.Posts.SetLoading(true)
	})
	defer store.Mgr.Update(ctx, claim.UserId, func(s *store.Store) {
		s.Posts.SetLoading(false)
	})

	list, err := api.PetWell.FetchPosts(ctx, token, category)
	if err != nil {
		store.Mgr.Update(ctx, claim.UserId, func(s *store.Store) {
			s.Posts.SetError(category, api.UserMessage(err))
		})
		return upstreamError(c, err)
	}

	store.Mgr.Update(ctx, claim.UserId, func(s *store.Store) {
		s.Posts.SetPosts(category, list, time.Now())
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"posts":  list,
		"cached": false,
	})
}

// CreatePost nhận multipart (phần "post" JSON + file "image"), gắn slug
// từ tiêu đề rồi chuyển nguyên dạng lên API PetWell
func CreatePost(c *fiber.Ctx) error {
	claim := helper.GetUserFromToken(c)
	token := helper.BearerToken(c)
	ctx := c.Context()

	var input model.CreatePostInput
	if err := json.Unmarshal([]byte(c.FormValue("post")), &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Phần post không phải JSON hợp lệ", err)
	}

	validate := validator.New()
	if err := validate.Struct(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	input.Slug = slug.Make(input.Title)

	var image io.Reader
	var imageName string
	if fh, err := c.FormFile("image"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Không đọc được file ảnh", err)
		}
		defer f.Close()
		image = f
		imageName = fh.Filename
	}

	post, err := api.PetWell.CreatePost(ctx, token, input, imageName, image)
	if err != nil {
		return upstreamError(c, err)
	}

	// bài mới → lần xem kế tiếp phải fetch lại
	store.Mgr.Update(ctx, claim.UserId, func(s *store.Store) {
		s.Posts.Invalidate()
	})

	return utils.SuccessResponse(c, fiber.StatusCreated, post)
}

// ReactPost gửi cảm xúc lên server rồi vá đúng bài đó trong cache
func ReactPost(c *fiber.Ctx) error {
	claim := helper.GetUserFromToken(c)
	token := helper.BearerToken(c)
	ctx := c.Context()

	postID := c.Locals("inputId").(string)
	input := c.Locals("reactInput").(model.ReactInput)

	sum, err := api.PetWell.ReactPost(ctx, token, postID, input.Reaction)
	if err != nil {
		return upstreamError(c, err)
	}

	store.Mgr.Update(ctx, claim.UserId, func(s *store.Store) {
		s.Posts.ReactToPost(postID, sum)
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"reactions": sum,
	})
}
