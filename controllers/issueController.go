package controllers

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"civic-reporter/config"
	"civic-reporter/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var issueCollection *mongo.Collection = config.GetCollection("issues")
var counterCollection *mongo.Collection = config.GetCollection("counters")

func uploadDir() string {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	return dir
}

// saveImage stores an uploaded image part on disk and returns its public URL path.
func saveImage(c *gin.Context, issueID int64) (*string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, err
	}

	dir := uploadDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%d_%s", issueID, filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return nil, err
	}

	url := "/uploads/" + name
	return &url, nil
}

// ListIssues returns the full issue collection, newest first, optionally
// narrowed by status or category.
func ListIssues(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}

	if status := c.Query("status"); status != "" && status != "all" {
		if !models.ValidStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		filter["status"] = status
	}

	if category := c.Query("category"); category != "" && category != "all" {
		filter["category"] = category
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := issueCollection.Find(ctx, filter, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issues"})
		return
	}
	defer cursor.Close(ctx)

	issues := make([]models.Issue, 0)
	if err := cursor.All(ctx, &issues); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode issues"})
		return
	}

	c.JSON(http.StatusOK, issues)
}

// CreateIssue handles the multipart creation of a new issue
func CreateIssue(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	description := strings.TrimSpace(c.PostForm("description"))
	category := c.PostForm("category")

	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}
	if description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Description is required"})
		return
	}
	if !models.ValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}

	latStr, latOK := c.GetPostForm("latitude")
	lngStr, lngOK := c.GetPostForm("longitude")
	if !latOK || !lngOK {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Coordinates are required"})
		return
	}

	latitude, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid latitude"})
		return
	}
	longitude, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid longitude"})
		return
	}

	// New issues start at the head of the workflow unless the client names a
	// valid status explicitly.
	status := models.Submitted
	if s, ok := c.GetPostForm("status"); ok {
		if !models.ValidStatus(s) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		status = models.IssueStatus(s)
	}

	id, err := models.NextSequence(counterCollection, "issues")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to allocate issue id"})
		return
	}

	imageURL, err := saveImage(c, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}

	issue := models.Issue{
		ID:          id,
		Title:       title,
		Description: description,
		Category:    models.IssueCategory(category),
		Status:      status,
		Latitude:    latitude,
		Longitude:   longitude,
		Address:     strings.TrimSpace(c.PostForm("address")),
		ImageURL:    imageURL,
		CreatedBy:   userID.(int64),
	}
	issue.Touch(time.Now())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := issueCollection.InsertOne(ctx, issue); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create issue"})
		return
	}

	c.JSON(http.StatusCreated, issue)
}

// UpdateIssue applies a partial multipart update: only posted fields change.
func UpdateIssue(c *gin.Context) {
	issueID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	role, _ := c.Get("role")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var issue models.Issue
	err = issueCollection.FindOne(ctx, bson.M{"_id": issueID}).Decode(&issue)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issue"})
		}
		return
	}

	if issue.CreatedBy != userID.(int64) && role != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to update this issue"})
		return
	}

	// Build update document from the posted fields only
	update := bson.M{"updatedAt": time.Now()}
	if title, ok := c.GetPostForm("title"); ok {
		title = strings.TrimSpace(title)
		if title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
			return
		}
		update["title"] = title
	}
	if description, ok := c.GetPostForm("description"); ok {
		description = strings.TrimSpace(description)
		if description == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Description is required"})
			return
		}
		update["description"] = description
	}
	if category, ok := c.GetPostForm("category"); ok {
		if !models.ValidCategory(category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}
		update["category"] = category
	}
	if status, ok := c.GetPostForm("status"); ok {
		if !models.ValidStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		if !models.CanTransition(issue.Status, models.IssueStatus(status)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status can only move forward"})
			return
		}
		update["status"] = status
	}
	if latStr, ok := c.GetPostForm("latitude"); ok {
		latitude, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid latitude"})
			return
		}
		update["latitude"] = latitude
	}
	if lngStr, ok := c.GetPostForm("longitude"); ok {
		longitude, err := strconv.ParseFloat(lngStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid longitude"})
			return
		}
		update["longitude"] = longitude
	}
	if address, ok := c.GetPostForm("address"); ok {
		update["address"] = strings.TrimSpace(address)
	}

	imageURL, err := saveImage(c, issueID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}
	if imageURL != nil {
		update["imageUrl"] = imageURL
	}

	err = issueCollection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": issueID},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&issue)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update issue"})
		return
	}

	c.JSON(http.StatusOK, issue)
}

// DeleteIssue removes an issue; only its creator or an admin may do so.
func DeleteIssue(c *gin.Context) {
	issueID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	role, _ := c.Get("role")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var issue models.Issue
	err = issueCollection.FindOne(ctx, bson.M{"_id": issueID}).Decode(&issue)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issue"})
		}
		return
	}

	if issue.CreatedBy != userID.(int64) && role != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to delete this issue"})
		return
	}

	if _, err := issueCollection.DeleteOne(ctx, bson.M{"_id": issueID}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete issue"})
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateIssueStatus is the dedicated status mutation. The workflow is
// strictly forward: only the single next step is accepted, and re-posting
// the current status is a no-op rather than an error.
func UpdateIssueStatus(c *gin.Context) {
	issueID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	status, ok := c.GetPostForm("status")
	if !ok || !models.ValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var issue models.Issue
	err = issueCollection.FindOne(ctx, bson.M{"_id": issueID}).Decode(&issue)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issue"})
		}
		return
	}

	if !models.CanTransition(issue.Status, models.IssueStatus(status)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status can only move forward"})
		return
	}

	err = issueCollection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": issueID},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&issue)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update issue status"})
		return
	}

	c.JSON(http.StatusOK, issue)
}
