package assets

// The viewer script keeps its state (current zoom, pan mode) on a single
// session object instead of module-level globals. States: idle, zoomed,
// panning.

const jsTemplate = `// Flipbook viewer
var viewer = {
    state: 'idle',
    zoomLevel: 1,
    isMobile: window.innerWidth <= 768
};

var flipbook = $('#flipbook');
var currentPageSpan = $('#current-page');
var thumbnails = $('.thumbnail');

$(document).ready(function() {
    flipbook.turn({
        width: viewer.isMobile ? 400 : 1000,
        height: viewer.isMobile ? 600 : 700,
        elevation: 50,
        gradients: true,
        autoCenter: true,
        duration: 600,
        acceleration: true,
        display: viewer.isMobile ? 'single' : 'double',
        when: {
            turned: function(e, page) {
                currentPageSpan.text(page);
                updateThumbnails(page);
            }
        }
    });

    currentPageSpan.text(1);
    updateThumbnails(1);
});

function updateThumbnails(page) {
    thumbnails.removeClass('active');
    thumbnails.eq(page - 1).addClass('active');

    var activeThumbnail = thumbnails.eq(page - 1)[0];
    if (activeThumbnail) {
        activeThumbnail.scrollIntoView({behavior: 'smooth', block: 'nearest', inline: 'center'});
    }
}

function goToPage(page) {
    if (page >= 1 && page <= totalPages) {
        flipbook.turn('page', page);
    }
}
{{if .F.ZoomPanel}}
function applyZoom(scale) {
    viewer.zoomLevel = Math.max(0.5, Math.min(3, scale));
    viewer.state = viewer.zoomLevel === 1 ? 'idle' : 'zoomed';
    flipbook.turn('stop').css({
        transform: 'scale(' + viewer.zoomLevel + ')',
        transformOrigin: 'center center'
    });
}

$('#zoom-in-btn').click(function() {
    applyZoom(viewer.zoomLevel + 0.25);
});

$('#zoom-out-btn').click(function() {
    applyZoom(viewer.zoomLevel - 0.25);
});

flipbook.on('click', '.page', function(e) {
    if (viewer.state === 'idle') {
        var rect = this.getBoundingClientRect();
        var x = ((e.clientX - rect.left) / rect.width) * 100;
        var y = ((e.clientY - rect.top) / rect.height) * 100;

        viewer.zoomLevel = 2;
        viewer.state = 'zoomed';
        flipbook.turn('stop').css({
            transform: 'scale(2)',
            transformOrigin: x + '% ' + y + '%'
        });
    } else {
        applyZoom(1);
    }
});
{{end}}
$('#prev-page-btn').click(function() {
    flipbook.turn('previous');
});

$('#next-page-btn').click(function() {
    flipbook.turn('next');
});

$('#first-page-btn').click(function() {
    goToPage(1);
});

$('#last-page-btn').click(function() {
    goToPage(totalPages);
});

$('#fullscreen-btn').click(function() {
    var elem = document.documentElement;
    if (!document.fullscreenElement) {
        if (elem.requestFullscreen) {
            elem.requestFullscreen();
        }
        $(this).find('i').removeClass('fa-expand').addClass('fa-compress');
    } else {
        if (document.exitFullscreen) {
            document.exitFullscreen();
        }
        $(this).find('i').removeClass('fa-compress').addClass('fa-expand');
    }
});

thumbnails.click(function() {
    goToPage($(this).data('page'));
});

$(document).keydown(function(e) {
    switch(e.which) {
        case 37: // left arrow
        case 33: // page up
            flipbook.turn('previous');
            e.preventDefault();
            break;
        case 39: // right arrow
        case 34: // page down
        case 32: // space
            flipbook.turn('next');
            e.preventDefault();
            break;
        case 36: // home
            goToPage(1);
            e.preventDefault();
            break;
        case 35: // end
            goToPage(totalPages);
            e.preventDefault();
            break;
    }
});
{{if .F.SidebarMenu}}
$('#menu-btn').click(function() {
    $('#sidebar-menu').toggle();
});

$('#sidebar-menu a').click(function(e) {
    e.preventDefault();
    goToPage($(this).data('page'));
    $('#sidebar-menu').hide();
});
{{end}}{{if .HasSearch}}
$('#search-btn').click(function() {
    $('#search-overlay').show();
    $('#search-input').focus();
});

$('#search-close-btn').click(function() {
    $('#search-overlay').hide();
});

$('#search-input').on('input', function() {
    var query = $(this).val().toLowerCase().trim();
    var results = $('#search-results');
    results.empty();

    if (query.length < 2) {
        return;
    }

    for (var page in searchData.pages) {
        var text = searchData.pages[page].toLowerCase();
        var idx = text.indexOf(query);
        if (idx === -1) {
            continue;
        }

        var start = Math.max(0, idx - 40);
        var snippet = searchData.pages[page].substring(start, idx + query.length + 40);

        var item = $('<div class="search-result"></div>');
        item.append($('<span class="result-page"></span>').text('Stránka ' + page + ': '));
        item.append($('<span></span>').text('…' + snippet + '…'));
        item.data('page', parseInt(page, 10));
        item.click(function() {
            goToPage($(this).data('page'));
            $('#search-overlay').hide();
        });
        results.append(item);
    }
});
{{end}}{{if .F.AISummaryStub}}
$('#ai-summary-btn').click(function() {
    $('#ai-summary-overlay').show();
});

$('#ai-summary-close-btn').click(function() {
    $('#ai-summary-overlay').hide();
});
{{end}}`
