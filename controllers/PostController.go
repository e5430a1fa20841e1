package controllers

import (
	"context"
	"net/http"

	"github.com/Srinandan2003/CollabSphere/middlewares"
	"github.com/Srinandan2003/CollabSphere/services"
	"github.com/Srinandan2003/CollabSphere/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PostController struct {
	posts *services.PostService
	media store.MediaStore
}

func NewPostController(posts *services.PostService, media store.MediaStore) *PostController {
	return &PostController{posts: posts, media: media}
}

// Create accepts a multipart form: title, content, optional media file
// and optional category id. The media file goes to GridFS and the post
// keeps its id.
func (ctl *PostController) Create(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	title := c.PostForm("title")
	content := c.PostForm("content")

	var category *primitive.ObjectID
	if hex := c.PostForm("category"); hex != "" {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid category ID format"})
			return
		}
		category = &id
	}

	var media string
	if file, err := c.FormFile("media"); err == nil {
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		defer src.Close()

		fileID, err := ctl.media.Upload(file.Filename, src)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to store media"})
			return
		}
		media = fileID.Hex()
	}

	post, err := ctl.posts.Create(c.Request.Context(), user.ID, title, content, media, category)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (ctl *PostController) GetAll(c *gin.Context) {
	posts, err := ctl.posts.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (ctl *PostController) GetByID(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	post, err := ctl.posts.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (ctl *PostController) Search(c *gin.Context) {
	posts, err := ctl.posts.SearchByTitle(c.Request.Context(), c.Query("title"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

type updatePostRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Media    *string `json:"media"`
	Category *string `json:"category"`
}

func (ctl *PostController) Update(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	fields := services.UpdatePost{
		Title:   req.Title,
		Content: req.Content,
		Media:   req.Media,
	}
	if req.Category != nil {
		categoryID, err := primitive.ObjectIDFromHex(*req.Category)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid category ID format"})
			return
		}
		fields.Category = &categoryID
	}

	post, err := ctl.posts.Update(c.Request.Context(), id, user.ID, fields)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (ctl *PostController) Delete(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctl.posts.Delete(c.Request.Context(), id, user.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

func (ctl *PostController) Like(c *gin.Context) {
	ctl.updateLikes(c, ctl.posts.Like)
}

func (ctl *PostController) Unlike(c *gin.Context) {
	ctl.updateLikes(c, ctl.posts.Unlike)
}

func (ctl *PostController) updateLikes(c *gin.Context, op func(ctx context.Context, postID, userID primitive.ObjectID) (int, error)) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	count, err := op(c.Request.Context(), id, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes": count})
}

// objectIDParam decodes a hex id path parameter; malformed ids are
// answered as 404 so unknown and unparseable ids look the same.
func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "invalid ID format"})
		return primitive.NilObjectID, false
	}
	return id, true
}
