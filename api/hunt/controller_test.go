package huntapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-treasure/api"
	api_i "github.com/beka-birhanu/vinom-treasure/api/i"
	"github.com/beka-birhanu/vinom-treasure/api/identity"
	dmn "github.com/beka-birhanu/vinom-treasure/domain"
	"github.com/beka-birhanu/vinom-treasure/game"
	"github.com/beka-birhanu/vinom-treasure/infrastruture/logger"
	"github.com/beka-birhanu/vinom-treasure/knapsack"
	"github.com/beka-birhanu/vinom-treasure/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodToken = "good-token"

type fakeTokenizer struct {
	explorerID uuid.UUID
}

func (f fakeTokenizer) Generate(map[string]interface{}, time.Duration) (string, error) {
	return goodToken, nil
}

func (f fakeTokenizer) Decode(token string) (map[string]interface{}, error) {
	if token != goodToken {
		return nil, errors.New("bad token")
	}
	return map[string]interface{}{"explorerID": f.explorerID.String()}, nil
}

type fakeHuntService struct {
	gotExplorer uuid.UUID
	gotHunt     dmn.HuntRequest
	gotLimit    int
	hunt        *dmn.Hunt
	hunts       []*dmn.Hunt
	appraisal   *dmn.Appraisal
	standings   []dmn.Standing
	err         error
}

func (f *fakeHuntService) Hunt(_ context.Context, explorerID uuid.UUID, req dmn.HuntRequest) (*dmn.Hunt, error) {
	f.gotExplorer, f.gotHunt = explorerID, req
	return f.hunt, f.err
}

func (f *fakeHuntService) Appraise(context.Context, dmn.AppraisalRequest) (*dmn.Appraisal, error) {
	return f.appraisal, f.err
}

func (f *fakeHuntService) ByID(context.Context, uuid.UUID) (*dmn.Hunt, error) {
	return f.hunt, f.err
}

func (f *fakeHuntService) ByExplorer(_ context.Context, explorerID uuid.UUID, limit int) ([]*dmn.Hunt, error) {
	f.gotExplorer, f.gotLimit = explorerID, limit
	return f.hunts, f.err
}

func (f *fakeHuntService) Leaderboard(_ context.Context, n int) ([]dmn.Standing, error) {
	f.gotLimit = n
	return f.standings, f.err
}

func newTestEngine(t *testing.T, svc *fakeHuntService, explorerID uuid.UUID) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	controller, err := NewHuntController(svc, logger.Nop{})
	require.NoError(t, err)

	return api.NewRouter(api.Config{
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{controller},
		AuthorizationMiddleware: identity.Authorize(fakeTokenizer{explorerID: explorerID}),
	}).Engine()
}

func do(engine *gin.Engine, method, path, body string, authed bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+goodToken)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestPostHunt(t *testing.T) {
	explorerID := uuid.New()
	body := `{"maze":{"rows":4,"cols":5,"seed":9},"entrance":{"row":0,"col":0},"exit":{"row":3,"col":4},"capacity":12,"algorithm":"recur"}`

	t.Run("requires a token", func(t *testing.T) {
		engine := newTestEngine(t, &fakeHuntService{}, explorerID)
		assert.Equal(t, http.StatusUnauthorized, do(engine, http.MethodPost, "/api/v1/hunts", body, false).Code)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/hunts", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer nope")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("created", func(t *testing.T) {
		hunt := &dmn.Hunt{
			ID:            uuid.New(),
			ExplorerID:    explorerID,
			Path:          []game.Cell{{Row: 0, Col: 0}},
			Knapsack:      knapsack.Result{Selected: []game.Cell{{Row: 1, Col: 1}}, Weight: 3, Value: 11},
			CellsExplored: 7,
			Reward:        4,
		}
		svc := &fakeHuntService{hunt: hunt}
		w := do(newTestEngine(t, svc, explorerID), http.MethodPost, "/api/v1/hunts", body, true)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		assert.Equal(t, explorerID, svc.gotExplorer)
		assert.Equal(t, dmn.HuntRequest{
			Maze:      dmn.MazeSpec{Rows: 4, Cols: 5, Seed: 9},
			Exit:      game.Cell{Row: 3, Col: 4},
			Capacity:  12,
			Algorithm: knapsack.Recursive,
		}, svc.gotHunt)

		var got HuntResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, hunt.ID.String(), got.ID)
		assert.Equal(t, 11, got.Value)
		assert.Equal(t, 4, got.Reward)
		assert.Equal(t, []game.Cell{{Row: 1, Col: 1}}, got.Selected)
	})

	t.Run("malformed body", func(t *testing.T) {
		engine := newTestEngine(t, &fakeHuntService{}, explorerID)
		assert.Equal(t, http.StatusBadRequest, do(engine, http.MethodPost, "/api/v1/hunts", `{"maze":`, true).Code)
		assert.Equal(t, http.StatusBadRequest, do(engine, http.MethodPost, "/api/v1/hunts", `{"capacity":3}`, true).Code)
	})

	for _, tc := range []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: exit outside", dmn.ErrInvalidRequest), http.StatusBadRequest},
		{fmt.Errorf("%w: %q", knapsack.ErrInvalidSolver, "greedy"), http.StatusBadRequest},
		{fmt.Errorf("%w: 30 found", service.ErrTooManyItems), http.StatusBadRequest},
		{errors.New("mongo down"), http.StatusInternalServerError},
	} {
		t.Run(tc.err.Error(), func(t *testing.T) {
			w := do(newTestEngine(t, &fakeHuntService{err: tc.err}, explorerID), http.MethodPost, "/api/v1/hunts", body, true)
			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
}

func TestGetHunts(t *testing.T) {
	explorerID := uuid.New()
	own := &dmn.Hunt{ID: uuid.New(), ExplorerID: explorerID, Reward: 3}

	t.Run("own hunt", func(t *testing.T) {
		w := do(newTestEngine(t, &fakeHuntService{hunt: own}, explorerID), http.MethodGet, "/api/v1/hunts/"+own.ID.String(), "", true)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("someone else's hunt", func(t *testing.T) {
		other := &dmn.Hunt{ID: uuid.New(), ExplorerID: uuid.New()}
		w := do(newTestEngine(t, &fakeHuntService{hunt: other}, explorerID), http.MethodGet, "/api/v1/hunts/"+other.ID.String(), "", true)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing hunt", func(t *testing.T) {
		w := do(newTestEngine(t, &fakeHuntService{err: dmn.ErrHuntNotFound}, explorerID), http.MethodGet, "/api/v1/hunts/"+uuid.NewString(), "", true)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad ID", func(t *testing.T) {
		w := do(newTestEngine(t, &fakeHuntService{}, explorerID), http.MethodGet, "/api/v1/hunts/not-a-uuid", "", true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("history", func(t *testing.T) {
		svc := &fakeHuntService{hunts: []*dmn.Hunt{own}}
		w := do(newTestEngine(t, svc, explorerID), http.MethodGet, "/api/v1/hunts?limit=5", "", true)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 5, svc.gotLimit)
		assert.Equal(t, explorerID, svc.gotExplorer)

		var got []HuntSummary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, own.ID.String(), got[0].ID)

		w = do(newTestEngine(t, svc, explorerID), http.MethodGet, "/api/v1/hunts?limit=many", "", true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLeaderboard(t *testing.T) {
	svc := &fakeHuntService{standings: []dmn.Standing{{ExplorerID: "a", Reward: 9}}}
	w := do(newTestEngine(t, svc, uuid.New()), http.MethodGet, "/api/v1/leaderboard?limit=3", "", false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, svc.gotLimit)
	assert.JSONEq(t, `[{"explorer_id":"a","reward":9}]`, w.Body.String())
}

func TestAppraise(t *testing.T) {
	items := []knapsack.Item{
		{Location: game.Cell{Row: 0, Col: 0}, Weight: 1, Value: 2},
		{Location: game.Cell{Row: 0, Col: 1}, Weight: 2, Value: 3},
	}
	solution, err := knapsack.Solve(items, 3, knapsack.Dynamic)
	require.NoError(t, err)
	svc := &fakeHuntService{appraisal: &dmn.Appraisal{Items: items, Solution: solution}}
	engine := newTestEngine(t, svc, uuid.New())
	body := `{"maze":{"rows":2,"cols":2},"capacity":3}`

	t.Run("json", func(t *testing.T) {
		w := do(engine, http.MethodPost, "/api/v1/appraisals", body, true)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"value":5`)
	})

	t.Run("csv", func(t *testing.T) {
		var want bytes.Buffer
		require.NoError(t, solution.Table.WriteCSV(&want))

		w := do(engine, http.MethodPost, "/api/v1/appraisals?format=csv", body, true)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
		assert.Equal(t, want.String(), w.Body.String())
	})

	t.Run("csv needs a table", func(t *testing.T) {
		recursive, err := knapsack.Solve(items, 3, knapsack.Recursive)
		require.NoError(t, err)
		svc := &fakeHuntService{appraisal: &dmn.Appraisal{Items: items, Solution: recursive}}
		w := do(newTestEngine(t, svc, uuid.New()), http.MethodPost, "/api/v1/appraisals?format=csv", body, true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
