package web_test

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminEmpty(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/admin")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "h1", "Panel de Administración")
	assertContainsText(t, doc, "#pendientes tbody", "¡No hay pagos pendientes!")
	assertContainsText(t, doc, "#verificados tbody", "No hay jugadores verificados.")
}

func TestAdminPartitionsEnrollments(t *testing.T) {
	ts := newWebTestServer(t)
	tournament := ts.app.SeedTournament("Copa")
	ts.app.SeedEnrollment(tournament.ID, "ana", false, 0)
	ts.app.SeedEnrollment(tournament.ID, "luis", true, 3)
	ts.app.SeedEnrollment(tournament.ID, "eva", false, 0)

	doc := parseHTML(ts.get("/admin").Body)

	assert.Equal(t, 2, doc.Find("#pendientes tbody tr[data-inscripcion]").Length())
	assert.Equal(t, 1, doc.Find("#verificados tbody tr[data-inscripcion]").Length())
	assertContainsText(t, doc, "#pendientes tbody", "ana")
	assertContainsText(t, doc, "#pendientes tbody", "V-ana")
	assertContainsText(t, doc, "#pendientes tbody", "0414-ana")
	assertContainsText(t, doc, "#verificados tbody", "luis")

	kills, _ := doc.Find(`#verificados input[name="kills"]`).Attr("value")
	assert.Equal(t, "3", kills)
}

func TestVerifyPayment(t *testing.T) {
	ts := newWebTestServer(t)
	tournament := ts.app.SeedTournament("Copa")
	id := ts.app.SeedEnrollment(tournament.ID, "ana", false, 0)

	rr := ts.post("/verificar-pago", url.Values{"inscripcion_id": {strconv.FormatInt(id, 10)}})
	require.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/admin", rr.Header().Get("Location"))

	rr = ts.followRedirect(rr)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".flash-success", "¡Pago verificado!")
	assertContainsText(t, doc, "#pendientes tbody", "¡No hay pagos pendientes!")
	assertContainsText(t, doc, "#verificados tbody", "ana")

	// The flash is shown only once
	doc = parseHTML(ts.get("/admin").Body)
	assertNotContainsElement(t, doc, ".flash")
}

func TestVerifyPaymentTwice(t *testing.T) {
	ts := newWebTestServer(t)
	tournament := ts.app.SeedTournament("Copa")
	id := ts.app.SeedEnrollment(tournament.ID, "ana", false, 0)
	form := url.Values{"inscripcion_id": {strconv.FormatInt(id, 10)}}

	assert.Equal(t, http.StatusFound, ts.post("/verificar-pago", form).Code)
	assert.Equal(t, http.StatusFound, ts.post("/verificar-pago", form).Code)

	e, err := ts.app.Storage.GetEnrollment(t.Context(), id)
	require.NoError(t, err)
	assert.True(t, e.PaymentVerified)
}

func TestVerifyPaymentUnknown(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/verificar-pago", url.Values{"inscripcion_id": {"42"}})
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "h1", "Error al verificar")
	assertContainsText(t, doc, ".detail", "enrollment not found")
}

func TestVerifyPaymentBadID(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/verificar-pago", url.Values{"inscripcion_id": {"abc"}})
	require.Equal(t, http.StatusOK, rr.Code)
	assertContainsText(t, parseHTML(rr.Body), "h1", "Error al verificar")
}

func TestSaveKills(t *testing.T) {
	ts := newWebTestServer(t)
	tournament := ts.app.SeedTournament("Copa")
	id := ts.app.SeedEnrollment(tournament.ID, "ana", true, 0)

	rr := ts.post("/guardar-kills", url.Values{
		"inscripcion_id": {strconv.FormatInt(id, 10)},
		"kills":          {"7"},
	})
	require.Equal(t, http.StatusFound, rr.Code)

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".flash-success", "Kills guardadas: 7")
	kills, _ := doc.Find(`#verificados input[name="kills"]`).Attr("value")
	assert.Equal(t, "7", kills)
}

func TestSaveKillsRejectsInvalidValues(t *testing.T) {
	for _, value := range []string{"-1", "2.5", "", "muchas"} {
		t.Run(value, func(t *testing.T) {
			ts := newWebTestServer(t)
			tournament := ts.app.SeedTournament("Copa")
			id := ts.app.SeedEnrollment(tournament.ID, "ana", true, 4)

			rr := ts.post("/guardar-kills", url.Values{
				"inscripcion_id": {strconv.FormatInt(id, 10)},
				"kills":          {value},
			})
			require.Equal(t, http.StatusOK, rr.Code)
			assertContainsText(t, parseHTML(rr.Body), "h1", "Error al guardar")

			e, err := ts.app.Storage.GetEnrollment(t.Context(), id)
			require.NoError(t, err)
			assert.Equal(t, 4, e.Kills)
		})
	}
}

func TestSaveKillsStoreFailure(t *testing.T) {
	ts := newWebTestServer(t)
	tournament := ts.app.SeedTournament("Copa")
	id := ts.app.SeedEnrollment(tournament.ID, "ana", true, 0)
	ts.storage.UpdateErr = errors.New("connection reset by peer")

	rr := ts.post("/guardar-kills", url.Values{
		"inscripcion_id": {strconv.FormatInt(id, 10)},
		"kills":          {"3"},
	})
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "h1", "Error al guardar")
	assertContainsText(t, doc, ".detail", "connection reset by peer")
}

func TestAdminPendingQueryFailure(t *testing.T) {
	ts := newWebTestServer(t)
	ts.storage.ListEnrollmentsErr = errors.New("timeout")

	doc := parseHTML(ts.get("/admin").Body)
	assertContainsText(t, doc, "h1", "Error al cargar pendientes")
	assertNotContainsElement(t, doc, "#pendientes")
	assertNotContainsElement(t, doc, "#verificados")
}

func TestAdminVerifiedQueryFailure(t *testing.T) {
	ts := newWebTestServer(t)
	ts.storage.ListEnrollmentsErr = errors.New("timeout")
	ts.storage.FailVerifiedList = true

	doc := parseHTML(ts.get("/admin").Body)
	assertContainsText(t, doc, "h1", "Error al cargar verificados")
	assertNotContainsElement(t, doc, "#pendientes")
}

func TestAdminEscapesPlayerFields(t *testing.T) {
	ts := newWebTestServer(t)
	tournament := ts.app.SeedTournament(`<b>Copa</b>`)
	ts.app.SeedEnrollment(tournament.ID, `<script>alert(1)</script>`, false, 0)

	doc := parseHTML(ts.get("/admin").Body)
	assertNotContainsElement(t, doc, "script")
	assertNotContainsElement(t, doc, "#pendientes b")
	assertContainsText(t, doc, "#pendientes tbody", "<script>alert(1)</script>")
}
