package ingest

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkrms_db/internal/record"
	"pkrms_db/internal/schema"
	"pkrms_db/internal/store"
	"pkrms_db/internal/validation"
)

type fakePublisher struct {
	mu        sync.Mutex
	summaries []Summary
}

func (p *fakePublisher) Publish(s Summary) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.summaries = append(p.summaries, s)
}

type fakeRecorder struct {
	batches []string
	records map[string]int
}

func (r *fakeRecorder) ObserveBatch(status string, _ time.Duration) {
	r.batches = append(r.batches, status)
}

func (r *fakeRecorder) ObserveRecord(entity, outcome string) {
	if r.records == nil {
		r.records = map[string]int{}
	}
	r.records[entity+"/"+outcome]++
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestService(t *testing.T, opts ...Option) (*Service, *store.MemoryStore) {
	t.Helper()
	reg := schema.Default()
	st := store.NewMemory(reg)
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	return NewService(reg, st, opts...), st
}

func formData() map[string]any {
	return map[string]any{
		"Status":             "kabupaten",
		"Selected_Province":  "Jawa Barat",
		"selected_kabupaten": "Bandung",
		"lg_name":            "Dinas PUPR Bandung",
		"email":              "pupr@bandung.go.id",
		"phone":              "+6281234567890",
	}
}

func link(no string, km string) map[string]any {
	return map[string]any{"Link_No": no, "Link_Length_Actual": km, "province_code": "32", "kabupaten_code": "4"}
}

func bridge(no, chainage string) map[string]any {
	return map[string]any{
		"year":           "2024",
		"link_no":        no,
		"province_code":  "32",
		"kabupaten_code": "4",
		"bridge_number":  "B-01",
		"chainage":       chainage,
		"bridge_length":  "12.5",
		"bridge_type":    "concrete",
	}
}

func roadCondition(no, from, to string) map[string]any {
	return map[string]any{
		"year":         "2024",
		"admin_code":   "3204",
		"link_no":      no,
		"chainagefrom": from,
		"chainageto":   to,
		"surveydate":   "2024-05-01",
	}
}

func stored(t *testing.T, st store.Store, entity, linkNo string) []record.Record {
	t.Helper()
	repo, err := st.Repository(entity)
	require.NoError(t, err)
	rows, err := repo.FindAllByForeignKey(context.Background(), schema.FieldLinkNo, linkNo)
	require.NoError(t, err)
	return rows
}

func TestUpload_Success(t *testing.T) {
	pub := &fakePublisher{}
	rec := &fakeRecorder{}
	svc, st := newTestService(t, WithPublisher(pub), WithRecorder(rec))

	res := svc.Upload(context.Background(), map[string]any{
		"FormData":      []any{formData()},
		"RoadCondition": []any{roadCondition("001", "0", "500"), roadCondition("001", "500", "1000")},
		"Link":          []any{link("001", "1")},
	})

	require.Equal(t, StatusSuccess, res.Status, res.Errors)
	assert.Equal(t, "All data processed successfully", res.Message)
	assert.Equal(t, []string{schema.Link, schema.RoadCondition}, res.SuccessfulModels)
	assert.Equal(t, 1, res.Entities[schema.Link].Created)
	assert.Equal(t, 2, res.Entities[schema.RoadCondition].Created)
	assert.NotEmpty(t, res.BatchID)

	links := stored(t, st, schema.Link, "001")
	require.Len(t, links, 1)
	assert.Equal(t, "3204", links[0]["admin_code"], "derived from province and regency codes")
	assert.Len(t, stored(t, st, schema.RoadCondition, "001"), 2)

	require.Len(t, pub.summaries, 1)
	assert.Equal(t, []string{"3204"}, pub.summaries[0].AdminCodes)
	assert.Equal(t, 3, pub.summaries[0].Created)
	assert.Equal(t, "Dinas PUPR Bandung", pub.summaries[0].Submitter)
	assert.Equal(t, []string{"success"}, rec.batches)
	assert.Equal(t, 2, rec.records["RoadCondition/created"])
}

func TestUpload_GateRejectsEverything(t *testing.T) {
	svc, st := newTestService(t)

	bad := formData()
	bad["email"] = "not-an-email"
	res := svc.Upload(context.Background(), map[string]any{
		"FormData":      []any{formData(), bad},
		"Link":          []any{link("001", "1")},
		"RoadCondition": []any{roadCondition("001", "0", "1000")},
	})

	assert.Equal(t, StatusValidationError, res.Status)
	assert.Equal(t, "FormData validation failed - rejecting all data", res.Message)
	require.Contains(t, res.Errors, "FormData_record_1")
	f := res.Errors["FormData_record_1"].(*RecordFailure)
	assert.Equal(t, []string{validation.MsgEmail}, f.Errors["email"])

	assert.Empty(t, stored(t, st, schema.Link, "001"))
	assert.Empty(t, stored(t, st, schema.RoadCondition, "001"))
}

func TestUpload_PartialSuccess(t *testing.T) {
	svc, st := newTestService(t)

	res := svc.Upload(context.Background(), map[string]any{
		"FormData":        formData(),
		"Link":            []any{link("001", "1")},
		"BridgeInventory": []any{bridge("001", "5000"), bridge("001", "400")},
		"TrafficVolume":   []any{map[string]any{"year": "2024", "admin_code": "3204", "link_no": "001"}},
	})

	require.Equal(t, StatusPartialSuccess, res.Status)
	assert.Equal(t, "Some records failed validation", res.Message)
	assert.Equal(t, []string{schema.Link, schema.TrafficVolume}, res.SuccessfulModels)
	assert.NotContains(t, res.SuccessfulModels, schema.BridgeInventory)

	be := res.Entities[schema.BridgeInventory]
	assert.Equal(t, 1, be.Created)
	require.Contains(t, be.Failures, "BridgeInventory_record_0")
	f := be.Failures["BridgeInventory_record_0"]
	require.NotNil(t, f.Consistency)
	assert.Equal(t, validation.KindBeyondLink, f.Consistency.Kind)
	assert.NotEmpty(t, f.Errors["chainage"])

	body, ok := res.Errors[schema.BridgeInventory].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, body, "BridgeInventory_record_0")

	bridges := stored(t, st, schema.BridgeInventory, "001")
	require.Len(t, bridges, 1)
	assert.Equal(t, "400", bridges[0]["chainage"])
}

func TestUpload_UpsertByID(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	res := svc.Upload(ctx, map[string]any{"Link": []any{link("001", "1")}})
	require.Equal(t, StatusSuccess, res.Status)
	id := stored(t, st, schema.Link, "001")[0]["id"]

	update := map[string]any{"id": id, "link_no": "001", "link_name": "Jalan Raya"}
	res = svc.Upload(ctx, map[string]any{"Link": []any{update}})
	require.Equal(t, StatusSuccess, res.Status, res.Errors)
	assert.Equal(t, 1, res.Entities[schema.Link].Updated)
	assert.Equal(t, 0, res.Entities[schema.Link].Created)

	links := stored(t, st, schema.Link, "001")
	require.Len(t, links, 1)
	assert.Equal(t, "Jalan Raya", links[0]["link_name"])
	assert.Equal(t, "1", links[0]["link_length_actual"], "partial update keeps stored fields")
}

func TestUpload_UnknownIDCreates(t *testing.T) {
	svc, st := newTestService(t)

	res := svc.Upload(context.Background(), map[string]any{
		"Link": []any{map[string]any{"id": 42, "link_no": "001", "link_length_actual": "2"}},
	})
	require.Equal(t, StatusSuccess, res.Status)
	assert.Equal(t, 1, res.Entities[schema.Link].Created)
	assert.Len(t, stored(t, st, schema.Link, "001"), 1)
}

func TestUpload_BadID(t *testing.T) {
	svc, _ := newTestService(t)

	res := svc.Upload(context.Background(), map[string]any{
		"Link": []any{map[string]any{"id": "abc", "link_no": "001", "link_length_actual": "2"}},
	})
	require.Equal(t, StatusPartialSuccess, res.Status)
	f := res.Entities[schema.Link].Failures["Link_record_0"]
	assert.Equal(t, []string{validation.MsgInteger}, f.Errors["id"])
}

func TestUpload_IDBeyondRangeCreates(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	first := link("001", "1")
	first["link_name"] = "Jalan Lama"
	require.Equal(t, StatusSuccess, svc.Upload(ctx, map[string]any{"Link": []any{first}}).Status)
	require.Equal(t, "1", stored(t, st, schema.Link, "001")[0]["id"])

	second := link("002", "1")
	second["id"] = "18446744073709551617"
	res := svc.Upload(ctx, map[string]any{"Link": []any{second}})
	require.Equal(t, StatusSuccess, res.Status, res.Errors)
	assert.Equal(t, 1, res.Entities[schema.Link].Created)
	assert.Equal(t, 0, res.Entities[schema.Link].Updated)

	assert.Equal(t, "Jalan Lama", stored(t, st, schema.Link, "001")[0]["link_name"])
	assert.Len(t, stored(t, st, schema.Link, "002"), 1)
}

func TestUpload_NumberOutOfRange(t *testing.T) {
	svc, st := newTestService(t)

	res := svc.Upload(context.Background(), map[string]any{
		"Link":            []any{link("001", "1")},
		"BridgeInventory": []any{bridge("001", "1e20000000")},
	})
	require.Equal(t, StatusPartialSuccess, res.Status)
	f := res.Entities[schema.BridgeInventory].Failures["BridgeInventory_record_0"]
	require.NotNil(t, f)
	assert.Equal(t, []string{validation.MsgNumber}, f.Errors["chainage"])
	assert.Empty(t, stored(t, st, schema.BridgeInventory, "001"))
}

func TestUpload_MissingRequiredField(t *testing.T) {
	svc, st := newTestService(t)

	incomplete := bridge("001", "200")
	delete(incomplete, "bridge_type")
	res := svc.Upload(context.Background(), map[string]any{
		"Link":            []any{link("001", "1")},
		"BridgeInventory": []any{incomplete, bridge("001", "400")},
	})

	require.Equal(t, StatusPartialSuccess, res.Status)
	be := res.Entities[schema.BridgeInventory]
	assert.Equal(t, 1, be.Created)
	require.Contains(t, be.Failures, "BridgeInventory_record_0")
	f := be.Failures["BridgeInventory_record_0"]
	assert.Equal(t, []string{validation.MsgRequired}, f.Errors["bridge_type"])
	assert.Nil(t, f.Consistency)

	bridges := stored(t, st, schema.BridgeInventory, "001")
	require.Len(t, bridges, 1)
	assert.Equal(t, "400", bridges[0]["chainage"])
}

func TestUpload_LoneSegmentPastLinkEnd(t *testing.T) {
	svc, st := newTestService(t)

	res := svc.Upload(context.Background(), map[string]any{
		"Link":          []any{link("001", "1")},
		"RoadCondition": []any{roadCondition("001", "0", "99999")},
	})

	require.Equal(t, StatusPartialSuccess, res.Status)
	f := res.Entities[schema.RoadCondition].Failures["RoadCondition_record_0"]
	require.NotNil(t, f)
	require.NotNil(t, f.Consistency)
	assert.Equal(t, validation.KindBeyondLink, f.Consistency.Kind)
	assert.Empty(t, stored(t, st, schema.RoadCondition, "001"))
}

func TestUpload_UpdateKeepsStoredAdminCode(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	l := link("001", "1")
	l["admin_code"] = "9999"
	require.Equal(t, StatusSuccess, svc.Upload(ctx, map[string]any{"Link": []any{l}}).Status)
	id := stored(t, st, schema.Link, "001")[0]["id"]

	update := map[string]any{"id": id, "province_code": "33", "kabupaten_code": "1"}
	res := svc.Upload(ctx, map[string]any{"Link": []any{update}})
	require.Equal(t, StatusSuccess, res.Status, res.Errors)
	require.Equal(t, 1, res.Entities[schema.Link].Updated)

	links := stored(t, st, schema.Link, "001")
	require.Len(t, links, 1)
	assert.Equal(t, "9999", links[0]["admin_code"])
	assert.Equal(t, "33", links[0]["province_code"])

	update["admin_code"] = "3301"
	res = svc.Upload(ctx, map[string]any{"Link": []any{update}})
	require.Equal(t, StatusSuccess, res.Status, res.Errors)
	assert.Equal(t, "3301", stored(t, st, schema.Link, "001")[0]["admin_code"])
}

func TestUpload_DuplicateLink(t *testing.T) {
	svc, _ := newTestService(t)

	res := svc.Upload(context.Background(), map[string]any{
		"Link": []any{link("001", "1"), link("001", "2")},
	})
	require.Equal(t, StatusPartialSuccess, res.Status)
	f := res.Entities[schema.Link].Failures["Link_record_1"]
	assert.Equal(t, []string{"link with this link_no already exists."}, f.Errors["link_no"])
}

func TestUpload_MissingLink(t *testing.T) {
	svc, _ := newTestService(t)

	res := svc.Upload(context.Background(), map[string]any{
		"TrafficVolume": []any{map[string]any{"year": "2024", "admin_code": "3204", "link_no": "404"}},
	})
	require.Equal(t, StatusPartialSuccess, res.Status)
	f := res.Entities[schema.TrafficVolume].Failures["TrafficVolume_record_0"]
	assert.Equal(t, []string{`Invalid link_no "404" - object does not exist.`}, f.Errors["link_no"])
}

func TestUpload_RoadConditionOverlap(t *testing.T) {
	svc, st := newTestService(t)

	res := svc.Upload(context.Background(), map[string]any{
		"Link": []any{link("001", "1")},
		"RoadCondition": []any{
			roadCondition("001", "0", "500"),
			roadCondition("001", "250", "750"),
			roadCondition("001", "500", "1000"),
		},
	})
	require.Equal(t, StatusPartialSuccess, res.Status)
	rc := res.Entities[schema.RoadCondition]
	assert.Equal(t, 2, rc.Created)

	f := rc.Failures["RoadCondition_record_1"]
	require.NotNil(t, f.Consistency)
	assert.Equal(t, validation.KindOverlap, f.Consistency.Kind)
	assert.NotEmpty(t, f.Errors[validation.NonFieldErrors])
	assert.Len(t, stored(t, st, schema.RoadCondition, "001"), 2)
}

func TestUpload_ResubmitIdenticalSegment(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	res := svc.Upload(ctx, map[string]any{
		"Link":          []any{link("001", "1")},
		"RoadCondition": []any{roadCondition("001", "0", "1000")},
	})
	require.Equal(t, StatusSuccess, res.Status)

	id := stored(t, st, schema.RoadCondition, "001")[0]["id"]
	patch := roadCondition("001", "0", "1000")
	patch["id"] = id
	patch["iri"] = "3.2"
	res = svc.Upload(ctx, map[string]any{"RoadCondition": []any{patch}})
	require.Equal(t, StatusSuccess, res.Status, res.Errors)

	rows := stored(t, st, schema.RoadCondition, "001")
	require.Len(t, rows, 1)
	assert.Equal(t, "3.2", rows[0]["iri"])
}

func TestUpload_UnknownAndMalformedEntities(t *testing.T) {
	svc, _ := newTestService(t)

	res := svc.Upload(context.Background(), map[string]any{
		"Link":                []any{link("001", "1"), "oops"},
		"Culverts":            []any{map[string]any{"a": "b"}},
		"DRP":                 "not a list",
		schema.WidthStandards: []any{},
	})
	require.Equal(t, StatusPartialSuccess, res.Status)

	assert.Equal(t, "no handler for entity Culverts", res.Entities["Culverts"].Error)
	assert.Contains(t, res.Entities[schema.DRP].Error, "expected a list of records")
	f := res.Entities[schema.Link].Failures["Link_record_1"]
	assert.Equal(t, []string{"Invalid data. Expected an object, but got string."}, f.Errors[validation.NonFieldErrors])
	assert.Contains(t, res.Errors, "Culverts")
	assert.Contains(t, res.SuccessfulModels, schema.WidthStandards)
}
