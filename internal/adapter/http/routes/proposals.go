package routes

import (
	"remodeling_proposals/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProposals = "/proposals"
	PathModels    = "/models"
)

func addProposalRoutes(rg *gin.RouterGroup, proposalHandler *handlers.ProposalHandler) {
	proposals := rg.Group(PathProposals)
	{
		proposals.POST("", proposalHandler.GenerateProposal)
		proposals.GET("", proposalHandler.ListProposals)
		proposals.GET("/:id", proposalHandler.GetProposal)
		proposals.PUT("/:id", proposalHandler.UpdateProposal)
		proposals.DELETE("/:id", proposalHandler.DeleteProposal)
		proposals.GET("/:id/pdf", proposalHandler.DownloadProposalPDF)
	}

	rg.GET(PathModels, proposalHandler.ListModels)
}
