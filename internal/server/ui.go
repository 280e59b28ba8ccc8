package server

import "net/http"

// handleIndex serves the single-page UI.
func handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexPage))
}

const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>AudioZip</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 720px; margin: 2rem auto; padding: 0 1rem; color: #222; }
h1 { font-size: 1.4rem; }
textarea { width: 100%; min-height: 90px; font-family: monospace; }
button { padding: .5rem 1.2rem; cursor: pointer; }
table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
td, th { border: 1px solid #ccc; padding: .3rem .5rem; font-size: .85rem; text-align: left; }
.ok { color: #1a7f37; }
.failed { color: #b42318; }
progress { width: 100%; }
#bundles a { display: block; margin: .3rem 0; }
</style>
</head>
<body>
<h1>AudioZip &mdash; batch MP3 downloader</h1>

<form id="run-form">
<label>Video links (one per line)</label>
<textarea name="videos" placeholder="https://www.youtube.com/watch?v=..."></textarea>
<label>Playlist links (one per line)</label>
<textarea name="playlists" placeholder="https://www.youtube.com/playlist?list=..."></textarea>
<label>Or upload a link file</label>
<input type="file" name="links_file">
<p><button type="submit" id="start">Start</button></p>
</form>

<div id="status" hidden>
<progress id="bar" max="1" value="0"></progress>
<p id="state"></p>
<table id="outcomes" hidden>
<thead><tr><th>Title</th><th>Status</th><th>Size (MB)</th></tr></thead>
<tbody></tbody>
</table>
</div>

<div id="bundles"></div>

<script>
const form = document.getElementById('run-form');
let poll = null;

form.addEventListener('submit', async (e) => {
  e.preventDefault();
  const resp = await fetch('/api/v1/runs', { method: 'POST', body: new FormData(form) });
  if (resp.status === 409) { alert('A run is already in progress'); return; }
  if (!resp.ok) { alert('Failed to start: ' + await resp.text()); return; }
  document.getElementById('status').hidden = false;
  document.getElementById('bundles').innerHTML = '';
  if (poll) clearInterval(poll);
  poll = setInterval(refresh, 1000);
});

async function refresh() {
  const snap = await (await fetch('/api/v1/runs/current')).json();
  document.getElementById('bar').value = snap.progress || 0;
  document.getElementById('state').textContent = snap.state + ' (' + snap.done + '/' + snap.total + ')';

  const table = document.getElementById('outcomes');
  const body = table.querySelector('tbody');
  body.innerHTML = '';
  (snap.outcomes || []).forEach(o => {
    const tr = document.createElement('tr');
    tr.innerHTML = '<td>' + (o.title || o.url) + '</td>' +
      '<td class="' + o.status + '">' + o.status + '</td>' +
      '<td>' + (o.filesize_mb || '') + '</td>';
    body.appendChild(tr);
  });
  table.hidden = body.children.length === 0;

  if (snap.state === 'results-ready' || snap.state === 'no-results' || snap.state === 'cleaned') {
    clearInterval(poll);
    poll = null;
    renderBundles(snap.bundles || []);
  }
}

function renderBundles(bundles) {
  const div = document.getElementById('bundles');
  div.innerHTML = bundles.length ? '<h2>Downloads</h2>' : '<p>No files were produced.</p>';
  bundles.forEach(b => {
    const a = document.createElement('a');
    a.href = '/api/v1/bundles/' + b.id;
    a.textContent = b.name;
    div.appendChild(a);
  });
}
</script>
</body>
</html>
`
