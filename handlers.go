package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

/*** DTOs shared across handlers ***/

// QuestionDTO is a question as served to the quiz page. The answer index
// and explanation are withheld until the answer is submitted.
type QuestionDTO struct {
	ID           string   `json:"id"`
	Chapter      string   `json:"chapter"`
	QuestionText string   `json:"questionText"`
	Options      []string `json:"options"`
	Assets       []Asset  `json:"assets,omitempty"`
}

type DatasetDTO struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

func toQuestionDTO(q Question) QuestionDTO {
	return QuestionDTO{
		ID:           q.ID,
		Chapter:      q.Chapter,
		QuestionText: q.QuestionText,
		Options:      q.Options,
		Assets:       q.Assets,
	}
}

/*** Catalog ***/

func ListDatasets(cat *FileCatalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := cat.Datasets()
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		out := make([]DatasetDTO, 0, len(entries))
		for _, e := range entries {
			out = append(out, DatasetDTO{ID: e.ID, Label: e.Label})
		}
		c.JSON(http.StatusOK, gin.H{"datasets": out})
	}
}

func ListChapters(cat *FileCatalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		dataset := c.DefaultQuery("dataset", DatasetAll)
		qs, err := cat.Questions(dataset)
		if err != nil {
			status := http.StatusBadGateway
			if errors.Is(err, ErrUnknownDataset) {
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"chapters": Chapters(qs)})
	}
}

/*** Quiz rounds ***/

type StartQuizReq struct {
	Dataset string `json:"dataset"`
	Chapter string `json:"chapter"`
	Mode    string `json:"mode"` // "all" (default) | "wrong"
	Count   int    `json:"count"`
	Seed    *int64 `json:"seed"` // optional for reproducibility
}

func StartQuiz(mgr *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StartQuizReq
		_ = c.BindJSON(&req)
		if req.Mode == "" {
			req.Mode = ModeAll
		}
		if req.Mode != ModeAll && req.Mode != ModeWrong {
			c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be \"all\" or \"wrong\""})
			return
		}

		sess, err := mgr.Start(StartOptions{
			Dataset: req.Dataset,
			Chapter: req.Chapter,
			Mode:    req.Mode,
			Count:   req.Count,
			Seed:    req.Seed,
		})
		if err != nil {
			status := http.StatusBadGateway
			if errors.Is(err, ErrUnknownDataset) {
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		// An empty round is a normal outcome (empty wrong set, chapter
		// with no questions); the front end renders the empty state.
		out := make([]QuestionDTO, 0, len(sess.QuestionIDs))
		for _, id := range sess.QuestionIDs {
			out = append(out, toQuestionDTO(sess.questions[id]))
		}
		c.JSON(http.StatusOK, gin.H{
			"sessionId":   sess.ID,
			"questionIds": sess.QuestionIDs,
			"questions":   out,
		})
	}
}

type AnswerReq struct {
	QuestionID string `json:"questionId"`
	Selected   *int   `json:"selected"`
}

func AnswerQuiz(mgr *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AnswerReq
		if err := c.BindJSON(&req); err != nil || req.QuestionID == "" || req.Selected == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "questionId and selected are required"})
			return
		}
		res, err := mgr.SubmitAnswer(c.Param("id"), req.QuestionID, *req.Selected)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func FinishQuiz(mgr *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := mgr.Finalize(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// LastAnswers hands the mirrored answer map to the results view so it
// can re-render scoring without re-deriving the sample.
func LastAnswers(mgr *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"answers": mgr.LastAnswers()})
	}
}
