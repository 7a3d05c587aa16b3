package main

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"content-humanizer/humanizer"
	"content-humanizer/models"
	"content-humanizer/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

func setupHumanizeRoutes(router *gin.Engine, svc *services.HumanizeService, log *zap.Logger) {
	rg := router.Group("/humanize")

	rg.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// POST - Einzeltext testen (before/after)
	rg.POST("/test", func(c *gin.Context) {
		var req struct {
			Text string `json:"text"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Text is required"})
			return
		}
		res := svc.Engine.Test(req.Text)
		c.JSON(http.StatusOK, gin.H{"success": true, "before": res.Before, "after": res.After})
	})

	// Body generisch lesen: "text" darf beliebiges JSON sein, Nicht-Strings ergeben "".
	rg.POST("/content", func(c *gin.Context) {
		raw := map[string]any{}
		if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "text": svc.Engine.Value(raw["text"])})
	})

	rg.POST("/array", func(c *gin.Context) {
		raw := map[string]any{}
		if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "items": svc.Engine.ArrayValue(raw["items"])})
	})

	rg.POST("/engine-summaries", func(c *gin.Context) {
		var req struct {
			Engines []humanizer.EngineSummary `json:"engines"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body. 'engines' must be an array."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "engines": svc.Engine.EngineSummaries(req.Engines)})
	})

	for _, coll := range models.AllCollections {
		rg.POST("/"+string(coll), func(c *gin.Context) {
			dryRun := queryBool(c, "dry_run")
			report, err := svc.RunCollection(c.Request.Context(), coll, dryRun)
			if err != nil {
				log.Error("Humanization failed", zap.String("collection", string(coll)), zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to humanize " + string(coll) + " content"})
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"dry_run": dryRun,
				"summary": report.Summary,
				"results": report.Results,
			})
		})
	}

	rg.POST("/all", func(c *gin.Context) {
		run, err := svc.RunAll(c.Request.Context(), queryBool(c, "dry_run"))
		if err != nil {
			log.Error("Full humanization failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to humanize all content"})
			return
		}
		resp := gin.H{
			"success": true,
			"message": "Humanized " + strconv.Itoa(run.TotalUpdated) + " items across all collections",
			"run_id":  run.RunID,
			"results": allResults(run.Results),
		}
		if run.ReportURL != "" {
			resp["report_url"] = run.ReportURL
		}
		c.JSON(http.StatusOK, resp)
	})

	// POST - Dry-Run-Vorschau ohne Speichern
	rg.POST("/preview", func(c *gin.Context) {
		req := struct {
			Type  string `json:"type"`
			Limit int    `json:"limit"`
		}{Type: string(models.CollectionModels), Limit: 5}
		// leerer Body (auch chunked) = Defaults
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		previews, err := svc.Preview(c.Request.Context(), models.Collection(req.Type), req.Limit)
		if errors.Is(err, services.ErrUnknownCollection) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type. Use: brands, models, or variants"})
			return
		}
		if err != nil {
			log.Error("Preview failed", zap.String("type", req.Type), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate preview"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"type":         req.Type,
			"previewCount": len(previews),
			"previews":     previews,
		})
	})

	rg.GET("/diagnose/:collection", func(c *gin.Context) {
		coll := c.Param("collection")
		diags, err := svc.Diagnose(c.Request.Context(), models.Collection(coll))
		if errors.Is(err, services.ErrUnknownCollection) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown collection"})
			return
		}
		if err != nil {
			log.Error("Diagnosis failed", zap.String("collection", coll), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to diagnose content"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"collection": coll,
			"counts":     services.CountByStatus(diags),
			"items":      diags,
		})
	})
}

// allResults keys the per-collection summaries the way admin clients expect
// ("upcomingCars" rather than the collection name).
func allResults(results map[models.Collection]services.CollectionSummary) map[string]services.CollectionSummary {
	out := make(map[string]services.CollectionSummary, len(results))
	for c, summary := range results {
		key := string(c)
		if c == models.CollectionUpcoming {
			key = "upcomingCars"
		}
		out[key] = summary
	}
	return out
}

func queryBool(c *gin.Context, key string) bool {
	switch strings.ToLower(strings.TrimSpace(c.Query(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
