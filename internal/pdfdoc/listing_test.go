package pdfdoc

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"alquilerdocs/internal/docmodel"
	"alquilerdocs/internal/imgfetch"
)

func testListingData() *docmodel.RoomListingData {
	deposit := 475.0
	return &docmodel.RoomListingData{
		RoomName:        "Habitación con terraza",
		PropertyName:    "Chalet Las Rosas",
		PropertyAddress: "Calle de la Rosa 12, 28001 Madrid",
		MonthlyRent:     475,
		SizeSqm:         14,
		Description:     "Habitación luminosa con terraza privada y jardín compartido.",
		DepositAmount:   &deposit,
	}
}

func testJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 90, G: 140, B: 220, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// A listing without a single photo still renders a complete flyer, with
// the gradient cover standing in for the hero.
func TestListingNoPhotos(t *testing.T) {
	c := testComposer()
	c.Fetcher = imgfetch.New(0, 0, nil)

	f, err := c.Listing(context.Background(), testListingData())
	if err != nil {
		t.Fatalf("Listing: %v", err)
	}

	if !strings.HasPrefix(f.Name, "Anuncio_Calle_de_la_Rosa_12_") || !strings.HasSuffix(f.Name, ".pdf") {
		t.Errorf("Name = %q", f.Name)
	}
	if err := api.Validate(bytes.NewReader(f.Data), relaxedConf()); err != nil {
		t.Errorf("rendered listing fails PDF validation: %v", err)
	}

	content := extractText(t, f.Data)
	for _, want := range []string{
		"475",
		"Calle de la Rosa 12",
		"ALQUILER MENSUAL",
		"Contacta ahora",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("page content missing %q", want)
		}
	}
}

func TestListingWithPhotos(t *testing.T) {
	photo := testJPEG(t, 600, 400)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(photo)
	}))
	defer srv.Close()

	data := testListingData()
	data.Photos = []docmodel.PhotoRef{
		{URL: srv.URL + "/hero.jpg"},
		{URL: srv.URL + "/1.jpg"},
		{URL: srv.URL + "/2.jpg"},
	}
	data.CommonRooms = []docmodel.CommonRoom{
		{Name: "Cocina", Photos: []docmodel.PhotoRef{{URL: srv.URL + "/cocina.jpg"}}},
		{Name: "Salón"},
	}

	c := testComposer()
	c.Fetcher = imgfetch.New(0, 2, nil)

	f, err := c.Listing(context.Background(), data)
	if err != nil {
		t.Fatalf("Listing: %v", err)
	}
	if err := api.Validate(bytes.NewReader(f.Data), relaxedConf()); err != nil {
		t.Errorf("rendered listing fails PDF validation: %v", err)
	}
}

// Unreachable photos are skipped; the flyer renders without them.
func TestListingSkipsFailedPhotos(t *testing.T) {
	photo := testJPEG(t, 600, 400)
	mux := http.NewServeMux()
	mux.HandleFunc("/ok.jpg", func(w http.ResponseWriter, r *http.Request) { w.Write(photo) })
	mux.HandleFunc("/gone.jpg", func(w http.ResponseWriter, r *http.Request) { http.NotFound(w, r) })
	srv := httptest.NewServer(mux)
	defer srv.Close()

	data := testListingData()
	data.Photos = []docmodel.PhotoRef{
		{URL: srv.URL + "/gone.jpg"},
		{URL: srv.URL + "/ok.jpg"},
		{URL: srv.URL + "/gone.jpg"},
	}

	c := testComposer()
	c.Fetcher = imgfetch.New(0, 2, nil)

	f, err := c.Listing(context.Background(), data)
	if err != nil {
		t.Fatalf("Listing: %v", err)
	}
	if err := api.Validate(bytes.NewReader(f.Data), relaxedConf()); err != nil {
		t.Errorf("rendered listing fails PDF validation: %v", err)
	}
}

// A panorama hero fits very shallow; the overlay band, badge and title
// still anchor within the page.
func TestListingHeroClampsShallowHero(t *testing.T) {
	d := newDoc(listingMargin, fixedClock())
	hero := &imgfetch.Image{
		Data:   testJPEG(t, 1500, 120),
		Format: "JPG",
		Width:  1500,
		Height: 120,
	}

	c := testComposer()
	h := c.listingHero(d, testListingData(), hero)
	if h < heroMinHeight {
		t.Errorf("hero height = %v, want at least %v", h, heroMinHeight)
	}
}

func TestListingInvalidData(t *testing.T) {
	c := testComposer()
	if _, err := c.Listing(context.Background(), &docmodel.RoomListingData{MonthlyRent: -1}); err == nil {
		t.Error("Listing: expected error for negative rent")
	}
}

func TestDetectFeatures(t *testing.T) {
	data := testListingData()
	data.CommonRooms = []docmodel.CommonRoom{
		{Name: "Piscina comunitaria"},
		{Name: "Terraza"},
		{Name: "Garaje"},
		{Name: "Salón"},
	}

	features := detectFeatures(data)

	want := []string{"14 m²", "Piscina", "Terraza", "Parking", "WiFi incluido"}
	if len(features) != len(want) {
		t.Fatalf("features = %v, want %v", features, want)
	}
	for i := range want {
		if features[i] != want[i] {
			t.Errorf("features[%d] = %q, want %q", i, features[i], want[i])
		}
	}
}
