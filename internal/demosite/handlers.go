package demosite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Credentials accepted by the login form.
const (
	ValidUsername = "tomsmith"
	ValidPassword = "SuperSecretPassword!"
)

// Flash messages shown by the login flow.
const (
	flashLoggedIn        = "You logged into a secure area!"
	flashLoggedOut       = "You logged out of the secure area!"
	flashBadUsername   = "Your username is invalid!"
	flashBadPassword   = "Your password is invalid!"
	flashLoginRequired = "You must login to view the secure area!"
)

// imagesPerContentPage is how many avatars the dynamic-content page shows.
const imagesPerContentPage = 3

const (
	flashCookie   = "flash"
	sessionCookie = "session"
)

// User is a record served by the /api/users endpoint.
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar"`
}

// site holds the in-memory state backing the demo pages. It is created once
// per Server and never mutated after construction.
type site struct {
	users     map[int]User
	downloads map[string]string
	images    []string
	avatar    []byte
}

func newSite() *site {
	images := make([]string, 12)
	for i := range images {
		images[i] = fmt.Sprintf("/img/avatar-%02d.png", i+1)
	}

	return &site{
		users: map[int]User{
			1: {ID: 1, Email: "george.bluth@demo.test", FirstName: "George", LastName: "Bluth", Avatar: "/img/avatar-01.png"},
			2: {ID: 2, Email: "emma.wong@demo.test", FirstName: "Emma", LastName: "Wong", Avatar: "/img/avatar-02.png"},
			3: {ID: 3, Email: "eve.holt@demo.test", FirstName: "Eve", LastName: "Holt", Avatar: "/img/avatar-03.png"},
		},
		downloads: map[string]string{
			"release-notes.txt": "Release notes\n=============\n\n- Initial public release.\n- Login, upload, download and API demo pages.\n",
			"sample.csv":        "id,name\n1,alpha\n2,beta\n3,gamma\n",
		},
		images: images,
		avatar: encodeAvatar(),
	}
}

func (s *site) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /login", s.handleLogin)
	mux.HandleFunc("POST /authenticate", s.handleAuthenticate)
	mux.HandleFunc("GET /secure", s.handleSecure)
	mux.HandleFunc("GET /logout", s.handleLogout)
	mux.HandleFunc("GET /dynamic_content", s.handleDynamicContent)
	mux.HandleFunc("GET /img/{name}", s.handleImage)
	mux.HandleFunc("GET /upload", s.handleUploadForm)
	mux.HandleFunc("POST /upload", s.handleUpload)
	mux.HandleFunc("GET /download", s.handleDownloadIndex)
	mux.HandleFunc("GET /download/{name}", s.handleDownloadFile)
	mux.HandleFunc("GET /api/users/{id}", s.handleUser)

	return mux
}

func (s *site) handleIndex(w http.ResponseWriter, r *http.Request) {
	renderPage(w, indexTmpl, nil)
}

func (s *site) handleLogin(w http.ResponseWriter, r *http.Request) {
	renderPage(w, loginTmpl, flashData{Flash: takeFlash(w, r)})
}

func (s *site) handleAuthenticate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	switch {
	case username != ValidUsername:
		setFlash(w, flashBadUsername)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	case password != ValidPassword:
		setFlash(w, flashBadPassword)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	default:
		http.SetCookie(w, &http.Cookie{
			Name:  sessionCookie,
			Value: username,
			Path:  "/",
		})
		setFlash(w, flashLoggedIn)
		http.Redirect(w, r, "/secure", http.StatusSeeOther)
	}
}

func (s *site) handleSecure(w http.ResponseWriter, r *http.Request) {
	if !hasSession(r) {
		setFlash(w, flashLoginRequired)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	renderPage(w, secureTmpl, flashData{Flash: takeFlash(w, r)})
}

func (s *site) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:   sessionCookie,
		Path:   "/",
		MaxAge: -1,
	})
	setFlash(w, flashLoggedOut)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// handleDynamicContent renders 3 avatars picked at random per request, so
// consecutive loads usually show a different set. Identical back-to-back
// picks are possible and intentionally not prevented.
func (s *site) handleDynamicContent(w http.ResponseWriter, r *http.Request) {
	picks := rand.Perm(len(s.images))[:imagesPerContentPage]
	images := make([]string, 0, imagesPerContentPage)
	for _, i := range picks {
		images = append(images, s.images[i])
	}
	renderPage(w, dynamicTmpl, struct{ Images []string }{Images: images})
}

func (s *site) handleImage(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if !strings.HasSuffix(name, ".png") {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(s.avatar)
}

func (s *site) handleUploadForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, uploadFormTmpl, nil)
}

func (s *site) handleUpload(w http.ResponseWriter, r *http.Request) {
	f, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	// The upload is not persisted; the page only reports what was received.
	n, err := io.Copy(io.Discard, f)
	if err != nil {
		http.Error(w, "read failed", http.StatusInternalServerError)
		return
	}
	log.Printf("upload received: %s (%d bytes)", header.Filename, n)

	renderPage(w, uploadedTmpl, struct{ Filename string }{Filename: header.Filename})
}

func (s *site) handleDownloadIndex(w http.ResponseWriter, r *http.Request) {
	files := make([]string, 0, len(s.downloads))
	for name := range s.downloads {
		files = append(files, name)
	}
	renderPage(w, downloadTmpl, struct{ Files []string }{Files: files})
}

func (s *site) handleDownloadFile(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	content, ok := s.downloads[name]
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Write([]byte(content))
}

func (s *site) handleUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid user id"})
		return
	}

	user, ok := s.users[id]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "user not found"})
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Data User `json:"data"`
	}{Data: user})
}

func renderPage(w http.ResponseWriter, t *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.Execute(w, data); err != nil {
		log.Printf("render %s: %v", t.Name(), err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

// setFlash stores a one-shot message in a cookie. The next page render that
// calls takeFlash displays and clears it.
func setFlash(w http.ResponseWriter, msg string) {
	http.SetCookie(w, &http.Cookie{
		Name:  flashCookie,
		Value: url.QueryEscape(msg),
		Path:  "/",
	})
}

func takeFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:   flashCookie,
		Path:   "/",
		MaxAge: -1,
	})
	msg, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}
	return msg
}

func hasSession(r *http.Request) bool {
	c, err := r.Cookie(sessionCookie)
	return err == nil && c.Value == ValidUsername
}

// encodeAvatar produces the PNG served for every avatar URL. The suite only
// inspects src attributes, so one placeholder image is enough.
func encodeAvatar() []byte {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: 0x42, G: 0x85, B: 0xf4, A: 0xff})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(fmt.Sprintf("encode avatar: %v", err))
	}
	return buf.Bytes()
}
