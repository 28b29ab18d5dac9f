package assets

// Template text for the generated viewer. Image references follow the
// bundle contract: files/pages/{ordinal}.jpg and files/thumb/{ordinal}.jpg,
// ordinals 1-based in source page order.

const htmlTemplate = `<!DOCTYPE html>
<html lang="cs">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0, maximum-scale=1.0, user-scalable=no">
    <meta name="apple-mobile-web-app-capable" content="yes">
    <title>{{.Title}}</title>
    <link rel="stylesheet" href="css/style.css">
    <link rel="icon" href="files/thumb/1.jpg" type="image/jpeg">
    <link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.4.0/css/all.min.css">
    <script src="https://code.jquery.com/jquery-3.6.0.min.js"></script>
    <script src="https://cdnjs.cloudflare.com/ajax/libs/turn.js/3/turn.min.js"></script>
    <!-- Version: {{.Version}} -->
</head>
<body>
    <div id="flipbook-container">
        <div id="flipbook-toolbar">
{{- if .F.ZoomPanel}}
            <button id="zoom-in-btn" class="toolbar-btn" title="Přiblížit">
                <i class="fas fa-plus"></i>
            </button>
            <button id="zoom-out-btn" class="toolbar-btn" title="Oddálit">
                <i class="fas fa-minus"></i>
            </button>
{{- end}}
{{- if .HasSearch}}
            <button id="search-btn" class="toolbar-btn" title="Vyhledávání">
                <i class="fas fa-search"></i>
            </button>
{{- end}}
{{- if .F.SidebarMenu}}
            <button id="menu-btn" class="toolbar-btn" title="Menu">
                <i class="fas fa-bars"></i>
            </button>
{{- end}}
            <button id="prev-page-btn" class="toolbar-btn" title="Předchozí">
                <i class="fas fa-chevron-left"></i>
            </button>
            <button id="next-page-btn" class="toolbar-btn" title="Další">
                <i class="fas fa-chevron-right"></i>
            </button>

            <div id="page-info">
                <span id="current-page">1</span> / {{.PageCount}}
            </div>

            <button id="first-page-btn" class="toolbar-btn" title="První stránka">
                <i class="fas fa-backward-step"></i>
            </button>
            <button id="last-page-btn" class="toolbar-btn" title="Poslední stránka">
                <i class="fas fa-forward-step"></i>
            </button>
{{- if .F.AISummaryStub}}
            <button id="ai-summary-btn" class="toolbar-btn" title="Shrnutí">
                <i class="fas fa-wand-magic-sparkles"></i>
            </button>
{{- end}}
            <button id="fullscreen-btn" class="toolbar-btn" title="Celá obrazovka">
                <i class="fas fa-expand"></i>
            </button>
{{- if .F.DownloadButton}}
            <a id="download-btn" class="toolbar-btn" href="{{.PDFName}}" download title="Stáhnout PDF">
                <i class="fas fa-download"></i>
            </a>
{{- end}}
        </div>

{{- if .F.SidebarMenu}}
        <div id="sidebar-menu" style="display: none;">
            <ul>
{{- range .Ordinals}}
                <li><a href="#" data-page="{{.}}">Stránka {{.}}</a></li>
{{- end}}
            </ul>
        </div>
{{- end}}

        <div id="flipbook-viewer">
            <div id="flipbook">
{{- range .Ordinals}}
                <div class="page"><img src="files/pages/{{.}}.jpg" alt="Stránka {{.}}"></div>
{{- end}}
            </div>
        </div>

        <div id="thumbnail-bar">
            <div id="thumbnail-container">
{{- range .Ordinals}}
                <img src="files/thumb/{{.}}.jpg" class="thumbnail" data-page="{{.}}" alt="Stránka {{.}}">
{{- end}}
            </div>
        </div>
    </div>

{{- if .HasSearch}}
    <div id="search-overlay" class="overlay" style="display: none;">
        <div class="overlay-content">
            <h2>Vyhledávání</h2>
            <input type="text" id="search-input" placeholder="Zadejte hledaný text...">
            <div id="search-results"></div>
            <button id="search-close-btn">Zavřít</button>
        </div>
    </div>
{{- end}}
{{- if .F.AISummaryStub}}
    <div id="ai-summary-overlay" class="overlay" style="display: none;">
        <div class="overlay-content">
            <h2>Shrnutí</h2>
            <p id="ai-summary-text">Shrnutí zatím není k dispozici.</p>
            <button id="ai-summary-close-btn">Zavřít</button>
        </div>
    </div>
{{- end}}

    <script>
        const totalPages = {{.PageCount}};
{{- if .HasSearch}}
        const searchData = {{.SearchJSON}};
{{- end}}
    </script>
    <script src="js/flipbook.js"></script>
</body>
</html>
`

const cssTemplate = `* {
    margin: 0;
    padding: 0;
    box-sizing: border-box;
}

body {
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
    background: #e8e8e8;
    color: #333;
    overflow: hidden;
    height: 100vh;
}

#flipbook-container {
    display: flex;
    flex-direction: column;
    height: 100vh;
}

#flipbook-toolbar {
    background: #2563a6;
    padding: 8px 15px;
    display: flex;
    align-items: center;
    gap: 5px;
    box-shadow: 0 2px 4px rgba(0,0,0,0.2);
    z-index: 100;
}

.toolbar-btn {
    background: transparent;
    color: white;
    border: none;
    padding: 8px 12px;
    cursor: pointer;
    border-radius: 3px;
    font-size: 16px;
    text-decoration: none;
    transition: background 0.2s;
}

.toolbar-btn:hover {
    background: rgba(255, 255, 255, 0.15);
}

.toolbar-btn:active {
    background: rgba(255, 255, 255, 0.25);
}

#page-info {
    background: white;
    color: #333;
    padding: 4px 12px;
    border-radius: 3px;
    font-size: 14px;
    margin: 0 10px;
    min-width: 60px;
    text-align: center;
}

#current-page {
    font-weight: 600;
}

#flipbook-viewer {
    flex: 1;
    display: flex;
    align-items: center;
    justify-content: center;
    position: relative;
    overflow: hidden;
    background: #e8e8e8;
    padding: 20px;
}

#flipbook {
    width: 80%;
    height: 85vh;
    margin: 0 auto;
}

#flipbook .page {
    width: 50%;
    height: 100%;
    background-color: white;
    background-size: 100% 100%;
}

#flipbook .page img {
    width: 100%;
    height: 100%;
    object-fit: contain;
}

#flipbook .even .gradient {
    position: absolute;
    top: 0;
    left: 0;
    width: 100%;
    height: 100%;
    background: linear-gradient(to right, rgba(0,0,0,0) 0%, rgba(0,0,0,0.2) 100%);
}

#flipbook .odd .gradient {
    position: absolute;
    top: 0;
    right: 0;
    width: 100%;
    height: 100%;
    background: linear-gradient(to left, rgba(0,0,0,0) 0%, rgba(0,0,0,0.15) 100%);
}
{{if .F.ZoomPanel}}
.zoomed-view {
    cursor: move;
    cursor: grab;
}

.zoomed-view:active {
    cursor: grabbing;
}
{{end}}
#thumbnail-bar {
    background: #f5f5f5;
    padding: 10px;
    overflow-x: auto;
    overflow-y: hidden;
    border-top: 1px solid #ddd;
}

#thumbnail-container {
    display: flex;
    gap: 10px;
    width: max-content;
}

.thumbnail {
    height: 100px;
    cursor: pointer;
    border: 3px solid transparent;
    transition: border-color 0.3s, transform 0.3s;
    box-shadow: 0 2px 4px rgba(0,0,0,0.1);
}

.thumbnail:hover {
    transform: scale(1.05);
    box-shadow: 0 4px 8px rgba(0,0,0,0.15);
}

.thumbnail.active {
    border-color: #2563a6;
    box-shadow: 0 4px 8px rgba(37, 99, 166, 0.3);
}
{{if or .HasSearch .F.AISummaryStub}}
.overlay {
    position: fixed;
    top: 0;
    left: 0;
    width: 100%;
    height: 100%;
    background: rgba(0,0,0,0.6);
    z-index: 200;
    display: flex;
    align-items: center;
    justify-content: center;
}

.overlay-content {
    background: white;
    padding: 30px;
    border-radius: 6px;
    max-width: 600px;
    width: 90%;
    max-height: 80vh;
    overflow-y: auto;
}

.overlay-content h2 {
    margin-bottom: 15px;
    color: #2563a6;
}

.overlay-content input {
    width: 100%;
    padding: 10px;
    font-size: 16px;
    border: 1px solid #ddd;
    border-radius: 3px;
    margin-bottom: 15px;
}

.overlay-content button {
    background: #2563a6;
    color: white;
    border: none;
    padding: 10px 20px;
    border-radius: 3px;
    cursor: pointer;
    margin-top: 15px;
}

.search-result {
    padding: 10px;
    border-bottom: 1px solid #eee;
    cursor: pointer;
}

.search-result:hover {
    background: #f5f5f5;
}

.search-result .result-page {
    font-weight: 600;
    color: #2563a6;
}
{{end}}{{if .F.SidebarMenu}}
#sidebar-menu {
    position: fixed;
    top: 48px;
    left: 0;
    bottom: 0;
    width: 220px;
    background: #fff;
    border-right: 1px solid #ddd;
    overflow-y: auto;
    z-index: 150;
}

#sidebar-menu ul {
    list-style: none;
}

#sidebar-menu li a {
    display: block;
    padding: 10px 15px;
    color: #333;
    text-decoration: none;
    border-bottom: 1px solid #f0f0f0;
}

#sidebar-menu li a:hover {
    background: #f5f5f5;
}
{{end}}
@media (max-width: 768px) {
    .toolbar-btn {
        padding: 6px 10px;
        font-size: 14px;
    }

    #page-info {
        font-size: 12px;
        padding: 3px 8px;
    }

    .thumbnail {
        height: 80px;
    }
}

::-webkit-scrollbar {
    width: 8px;
    height: 8px;
}

::-webkit-scrollbar-track {
    background: #1a1a1a;
}

::-webkit-scrollbar-thumb {
    background: #4a4a4a;
    border-radius: 4px;
}

::-webkit-scrollbar-thumb:hover {
    background: #5a5a5a;
}
`
