package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/response"
	"taskboard-api/internal/service"
)

type GithubHandler struct {
	githubService service.GithubService
}

func NewGithubHandler(githubService service.GithubService) *GithubHandler {
	return &GithubHandler{githubService: githubService}
}

// GetRepositoryInfo aggregates branches, pulls, issues and commits for
// one repository.
func (h *GithubHandler) GetRepositoryInfo(c *gin.Context) {
	owner := c.Param("owner")
	repo := c.Param("repo")
	if owner == "" || repo == "" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Owner and repo are required")
		return
	}

	resp, err := h.githubService.GetRepositoryInfo(c.Request.Context(), owner, repo)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, resp)
}
