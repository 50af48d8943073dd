package http

// tmplIndex is the dashboard page. Plotly renders the waterfall client-side
// from the embedded initial figure; checklist changes re-fetch the figure
// from /api/figure.
const tmplIndex = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>Radiative Forcing</title>
<script src="https://cdn.plot.ly/plotly-2.35.2.min.js"></script>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:Georgia,'Times New Roman',serif;background:#fdfdfb;color:#1a1a1a;line-height:1.6;max-width:960px;margin:0 auto;padding:24px}
header pre{text-align:center;font-size:14px;color:#000;font-family:inherit}
h1{font-size:32px;margin:12px 0}
p{margin:8px 0}
.natural{color:#2e7d32;font-weight:600}
.human{color:#8F2738;font-weight:600}
details{background:#f4f2ec;border:1px solid #d8d4c8;border-radius:6px;padding:10px 14px;margin:16px 0}
summary{cursor:pointer;font-weight:600}
details p{font-size:14px;margin:6px 0}
.checklist{display:flex;flex-wrap:wrap;gap:6px 16px;margin:16px 0;padding:10px 14px;background:#f4f2ec;border:1px solid #d8d4c8;border-radius:6px}
.checklist label{font-size:14px;cursor:pointer;white-space:nowrap}
.checklist input{cursor:pointer;margin-right:4px}
#graph{width:100%;height:480px}
footer{font-size:12px;color:#777;margin-top:16px}
footer a{color:#5E8DB0}
</style>
</head>
<body>
<header>
<pre>Radiative Forcing Infographic</pre>
<h1>Radiative Forcing</h1>
</header>
<p>Radiative forcing is the difference between the solar energy absorbed by
Earth and the energy radiated back into space, measured in W/m&sup2;. A system
in thermal balance has zero radiative forcing; a positive value means more
energy is absorbed than reflected, leading to warming. Here the budget is
broken down into its components, the forcing agents, categorised by source.</p>
<p>Some of these agents are <span class="natural">natural</span> while others
are due to <span class="human">human</span> activities.</p>
<details>
<summary>Useful Definitions</summary>
<p><strong>Albedo:</strong> a measure of reflectivity, from 0 (perfect
absorber) to 1 (perfect reflector). Replacing forests with cropland raises
Earth's albedo because crops reflect more sunlight than forests.</p>
<p><strong>Stratospheric Ozone:</strong> ozone in the stratosphere absorbs
energy and partially re-emits it back into space.</p>
<p><strong>Black Carbon on Snow:</strong> fossil-fuel carbon trapped in ice
darkens it, lowering albedo and letting the ice absorb more sunlight.</p>
<p><strong>Aerosols:</strong> contribute negatively to radiative forcing, but
their short atmospheric lifetimes cannot offset long-lived greenhouse gases.</p>
<p><strong>Aerosol Cloud Albedo Effect:</strong> aerosols inhibit cloud
formation, letting more heat radiate away at night than clouds would trap.</p>
<p><strong>Contrails:</strong> ice clouds formed around aircraft engine
particles; like regular clouds they insulate the Earth.</p>
<p><strong>Solar Irradiance:</strong> natural variation in the sun's output,
the only fully non-anthropogenic forcing agent.</p>
</details>
<div class="checklist" id="checklist">
{{range .Sources}}<label><input type="checkbox" value="{{.Label}}"{{if .Checked}} checked{{end}}>{{.Label}}</label>
{{end}}</div>
<div id="graph"></div>
<footer>
<a id="export" href="/chart.png">Download as PNG</a>
&middot; data loaded {{.LoadedAt.Format "2006-01-02 15:04:05 MST"}}
</footer>
<script>
const initialFigure = {{.InitialFigure}};
const boxes = Array.from(document.querySelectorAll('#checklist input'));

function selection() {
  return boxes.filter(function(b) { return b.checked; })
              .map(function(b) { return b.value; });
}

function updateExportLink(sources) {
  const q = sources.map(function(s) { return 'source=' + encodeURIComponent(s); }).join('&');
  document.getElementById('export').href = '/chart.png?' + q;
}

async function update() {
  const sources = selection();
  const res = await fetch('/api/figure', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({sources: sources})
  });
  if (!res.ok) { return; }
  const fig = await res.json();
  Plotly.react('graph', fig.data, fig.layout);
  updateExportLink(sources);
}

boxes.forEach(function(b) { b.addEventListener('change', update); });
Plotly.newPlot('graph', initialFigure.data, initialFigure.layout);
updateExportLink(selection());
</script>
</body>
</html>
`
