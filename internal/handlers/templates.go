package handlers

import "html/template"

// Branded pages served by the public redirector. Kept self-contained: no
// static assets, inline styles only.
const pagesTpl = `
{{ define "error.html" }}<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{ .Title }}</title>
    <style>
        body { font-family: system-ui, -apple-system, sans-serif; display: flex; justify-content: center; align-items: center; height: 100vh; margin: 0; background-color: #f3f4f6; color: #1f2937; }
        .container { text-align: center; background: white; padding: 2rem; border-radius: 1rem; box-shadow: 0 4px 6px -1px rgba(0, 0, 0, 0.1); max-width: 90%; width: 400px; }
        .icon { font-size: 3rem; margin-bottom: 1rem; color: #6b7280; }
        h2 { margin-top: 0; color: #111827; }
        p { color: #4b5563; margin-bottom: 1.5rem; }
        .btn { display: inline-block; padding: 0.5rem 1rem; background-color: #3b82f6; color: white; text-decoration: none; border-radius: 0.375rem; font-size: 0.875rem; transition: background-color 0.2s; }
        .btn:hover { background-color: #2563eb; }
    </style>
</head>
<body>
    <div class="container">
        <div class="icon">👻</div>
        <h2>{{ .Title }}</h2>
        <p>{{ .Message }}</p>
        <a href="{{ .ClientURL }}" class="btn">Create Your Own Vibe</a>
    </div>
</body>
</html>{{ end }}

{{ define "interstitial.html" }}<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Redirecting...</title>
    <style>
        body { font-family: system-ui, -apple-system, sans-serif; display: flex; justify-content: center; align-items: center; height: 100vh; margin: 0; background-color: #f3f4f6; color: #1f2937; }
        .container { text-align: center; background: white; padding: 2rem; border-radius: 1rem; box-shadow: 0 4px 6px -1px rgba(0, 0, 0, 0.1); max-width: 90%; width: 400px; }
        .loader { border: 4px solid #f3f3f3; border-top: 4px solid #3b82f6; border-radius: 50%; width: 40px; height: 40px; animation: spin 1s linear infinite; margin: 0 auto 1rem; }
        @keyframes spin { 0% { transform: rotate(0deg); } 100% { transform: rotate(360deg); } }
        #timer { font-weight: bold; color: #3b82f6; font-size: 1.25rem; }
        .url { color: #6b7280; font-size: 0.875rem; margin-top: 1rem; word-break: break-all; }
        .btn { display: inline-block; margin-top: 1rem; padding: 0.5rem 1rem; background-color: #3b82f6; color: white; text-decoration: none; border-radius: 0.375rem; font-size: 0.875rem; transition: background-color 0.2s; border: none; cursor: pointer; }
        .btn:hover { background-color: #2563eb; }
        .btn-secondary { background-color: #9ca3af; margin-right: 0.5rem; }
        .btn-secondary:hover { background-color: #6b7280; }
        .btn-danger { background-color: #ef4444; margin-left: 0.5rem; }
        .btn-danger:hover { background-color: #dc2626; }
    </style>
</head>
<body>
    <div class="container">
        <div class="loader"></div>
        <h2>Vibing you there...</h2>
        <p>Redirecting in <span id="timer">{{ .Delay }}</span> seconds</p>
        <div class="url">Destination: {{ .URL }}</div>
        <div style="margin-top: 1rem; display: flex; justify-content: center; flex-wrap: wrap; gap: 0.5rem;">
            <button id="backBtn" class="btn btn-secondary" style="display: none;" onclick="history.back()">Go Back</button>
            <a href="{{ .URL }}" class="btn">Go Now</a>
            <button class="btn btn-danger" onclick="closeTab()">Close Tab</button>
        </div>
    </div>
    <script>
        let interval;
        function closeTab() {
            if (interval) clearInterval(interval);
            window.close();
        }
        if (window.history.length > 1) {
            document.getElementById('backBtn').style.display = 'inline-block';
        }
        let timeLeft = {{ .Delay }};
        const timerElement = document.getElementById('timer');
        interval = setInterval(() => {
            timeLeft--;
            timerElement.textContent = timeLeft;
            if (timeLeft <= 0) {
                clearInterval(interval);
                window.location.href = {{ .URL }};
            }
        }, 1000);
    </script>
</body>
</html>{{ end }}
`

// PageTemplates parses the redirector's HTML pages for gin's HTML renderer.
func PageTemplates() *template.Template {
	return template.Must(template.New("pages").Parse(pagesTpl))
}
