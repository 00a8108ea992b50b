package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"pkrms_db/internal/schema"
	"pkrms_db/internal/store"
	"pkrms_db/internal/validation"
)

// RecordController serves stored records back for inspection.
type RecordController struct {
	registry *schema.Registry
	store    store.Store
}

func NewRecordController(reg *schema.Registry, st store.Store) *RecordController {
	return &RecordController{registry: reg, store: st}
}

// entityView is the public description of a registry entry.
type entityView struct {
	Name       string   `json:"name"`
	Required   []string `json:"required"`
	ForeignKey string   `json:"foreign_key,omitempty"`
	Rule       string   `json:"rule"`
	Header     bool     `json:"header"`
	Persisted  bool     `json:"persisted"`
}

// ListEntities lists every entity the upload endpoint accepts, in processing order.
func (rc *RecordController) ListEntities(c *gin.Context) {
	names := rc.registry.Names()
	out := make([]entityView, 0, len(names))
	for _, name := range names {
		e, _ := rc.registry.Lookup(name)
		required := e.Required()
		if required == nil {
			required = []string{}
		}
		out = append(out, entityView{
			Name:       e.Name,
			Required:   required,
			ForeignKey: e.ForeignKey,
			Rule:       e.Linear.String(),
			Header:     e.Gate,
			Persisted:  e.Persisted,
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// GetRecord retrieves one stored record by entity and id.
func (rc *RecordController) GetRecord(c *gin.Context) {
	repo, ok := rc.repository(c)
	if !ok {
		return
	}
	id, err := validation.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record id"})
		return
	}

	rec, err := repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		logrus.WithError(err).WithFields(logrus.Fields{"entity": c.Param("entity"), "id": id}).Error("Failed to fetch record.")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch record"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"record": rec})
}

// ListByLink lists the records of an entity attached to one road link.
func (rc *RecordController) ListByLink(c *gin.Context) {
	repo, ok := rc.repository(c)
	if !ok {
		return
	}
	e, _ := rc.registry.Lookup(c.Param("entity"))
	field := e.ForeignKey
	if e.Name == schema.Link {
		field = schema.FieldLinkNo
	}
	if field == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Entity " + e.Name + " is not attached to a link"})
		return
	}

	recs, err := repo.FindAllByForeignKey(c.Request.Context(), field, c.Param("link_no"))
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"entity": e.Name, "link_no": c.Param("link_no")}).Error("Failed to list records by link.")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch records"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": recs})
}

func (rc *RecordController) repository(c *gin.Context) (store.Repository, bool) {
	name := c.Param("entity")
	if _, ok := rc.registry.Lookup(name); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown entity " + name})
		return nil, false
	}
	repo, err := rc.store.Repository(name)
	if err != nil {
		if errors.Is(err, store.ErrUnknownEntity) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entity " + name + " is not stored"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	return repo, true
}
