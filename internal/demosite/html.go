package demosite

import "html/template"

// flashData is shared by pages that render a one-shot flash message.
type flashData struct {
	Flash string
}

func mustPage(name, src string) *template.Template {
	return template.Must(template.New(name).Parse(src))
}

var (
	indexTmpl      = mustPage("index", indexHTML)
	loginTmpl      = mustPage("login", loginHTML)
	secureTmpl     = mustPage("secure", secureHTML)
	dynamicTmpl    = mustPage("dynamic", dynamicHTML)
	uploadFormTmpl = mustPage("upload-form", uploadFormHTML)
	uploadedTmpl   = mustPage("uploaded", uploadedHTML)
	downloadTmpl   = mustPage("download", downloadHTML)
)

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>Flightcheck Demo Site</title></head>
<body>
  <h1>Flightcheck Demo Site</h1>
  <p>Pages exercised by the browser test suite.</p>
  <ul id="examples">
    <li><a href="/login">Form Authentication</a></li>
    <li><a href="/dynamic_content">Dynamic Content</a></li>
    <li><a href="/upload">File Upload</a></li>
    <li><a href="/download">File Download</a></li>
  </ul>
</body>
</html>
`

const loginHTML = `<!DOCTYPE html>
<html>
<head><title>Login - Flightcheck Demo Site</title></head>
<body>
  {{if .Flash}}<div id="flash">{{.Flash}}</div>{{end}}
  <h2>Login Page</h2>
  <form id="login" method="post" action="/authenticate">
    <label for="username">Username</label>
    <input id="username" name="username" type="text">
    <label for="password">Password</label>
    <input id="password" name="password" type="password">
    <button id="login-submit" type="submit">Login</button>
  </form>
</body>
</html>
`

const secureHTML = `<!DOCTYPE html>
<html>
<head><title>Secure Area - Flightcheck Demo Site</title></head>
<body>
  {{if .Flash}}<div id="flash">{{.Flash}}</div>{{end}}
  <h2>Secure Area</h2>
  <p>Welcome to the Secure Area.</p>
  <a id="logout" href="/logout">Logout</a>
</body>
</html>
`

const dynamicHTML = `<!DOCTYPE html>
<html>
<head><title>Dynamic Content - Flightcheck Demo Site</title></head>
<body>
  <h2>Dynamic Content</h2>
  <div id="content">
    {{range .Images}}<div class="row"><img src="{{.}}" alt="avatar"></div>
    {{end}}
  </div>
</body>
</html>
`

const uploadFormHTML = `<!DOCTYPE html>
<html>
<head><title>File Upload - Flightcheck Demo Site</title></head>
<body>
  <h2>File Uploader</h2>
  <form id="upload" method="post" action="/upload" enctype="multipart/form-data">
    <input id="file-upload" name="file" type="file">
    <button id="file-submit" type="submit">Upload</button>
  </form>
</body>
</html>
`

const uploadedHTML = `<!DOCTYPE html>
<html>
<head><title>File Uploaded - Flightcheck Demo Site</title></head>
<body>
  <h3>File Uploaded!</h3>
  <div id="uploaded-files">{{.Filename}}</div>
</body>
</html>
`

const downloadHTML = `<!DOCTYPE html>
<html>
<head><title>File Download - Flightcheck Demo Site</title></head>
<body>
  <h2>File Downloader</h2>
  <div id="downloads">
    {{range .Files}}<div><a href="/download/{{.}}">{{.}}</a></div>
    {{end}}
  </div>
</body>
</html>
`
