package http

const pageTpl = `
{{define "head"}}<!doctype html>
<html lang="ja">
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>{{.}}</title>
<style>
body{font-family:system-ui,-apple-system,Segoe UI,Roboto,sans-serif;margin:0;background:linear-gradient(135deg,#fef2f2,#fff7ed);color:#111827}
a{color:inherit;text-decoration:none}
.wrap{max-width:1100px;margin:0 auto;padding:1.5rem 1rem}
.narrow{max-width:860px}
header.channel{background:#fff;border-bottom:1px solid #e5e7eb}
.channel .wrap{display:flex;gap:1.5rem;align-items:center}
.avatar{width:80px;height:80px;border-radius:50%;border:4px solid #ef4444;object-fit:cover}
.muted{color:#6b7280}
.badge{display:inline-block;font-size:.75rem;padding:2px 8px;border-radius:999px;border:1px solid transparent}
.badge.count{background:#fee2e2;color:#b91c1c}
.tag-info{background:#dbeafe;color:#1d4ed8;border-color:#bfdbfe}
.tag-warning{background:#ffedd5;color:#c2410c;border-color:#fed7aa}
.tabs{display:grid;grid-template-columns:repeat(4,1fr);gap:4px;margin-bottom:1.5rem}
.tabs a{text-align:center;padding:.5rem;border-radius:6px;background:#f3f4f6;font-size:1.1rem}
.tabs a.active{background:#fff;box-shadow:0 1px 3px rgba(0,0,0,.15);font-weight:600}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(300px,1fr));gap:1.5rem}
.card{background:#fff;border-radius:8px;overflow:hidden;box-shadow:0 1px 3px rgba(0,0,0,.1);display:flex;flex-direction:column;height:100%}
.card:hover{box-shadow:0 8px 20px rgba(0,0,0,.15)}
.thumb{position:relative}
.thumb img{width:100%;height:190px;object-fit:cover;display:block}
.duration{position:absolute;right:8px;bottom:8px;background:rgba(0,0,0,.8);color:#fff;font-size:.75rem;padding:2px 8px;border-radius:4px}
.card .body{padding:1rem;display:flex;flex-direction:column;flex-grow:1}
.card h3{margin:0 0 .75rem;font-size:1rem}
.tags{display:flex;flex-wrap:wrap;gap:4px;margin-bottom:.5rem}
.spacer{flex-grow:1}
.detail{background:#fff;border-radius:8px;overflow:hidden;box-shadow:0 1px 3px rgba(0,0,0,.1)}
.detail .thumb img{height:320px}
.detail .body{padding:2rem}
.player{position:relative;width:100%;padding-bottom:56.25%}
.player iframe{position:absolute;top:0;left:0;width:100%;height:100%;border:0;border-radius:8px}
.notice{background:#fff7ed;border:1px solid #fed7aa;color:#c2410c;border-radius:8px;padding:1rem}
.description{white-space:pre-wrap;line-height:1.7;color:#374151}
</style>
{{end}}

{{define "tags"}}<div class="tags">{{range .}}<span class="badge tag-{{.Tone}}">🏷 {{.Label}}</span>{{end}}</div>{{end}}

{{define "gallery"}}{{template "head" .Channel.Name}}
<header class="channel">
  <div class="wrap">
    <img class="avatar" src="{{.Avatar}}" alt="チャンネルアバター" width="80" height="80"
         onerror="this.onerror=null;this.src='/placeholder.svg'">
    <div>
      <h1 style="margin:0 0 .5rem">{{if .Channel.URL}}<a href="{{.Channel.URL}}">{{.Channel.Name}}</a>{{else}}{{.Channel.Name}}{{end}}</h1>
      <p class="muted" style="margin:0 0 .75rem">{{.Channel.Description}}</p>
      <div class="muted">
        {{if .Channel.VideoCount}}<span class="badge count">{{.Channel.VideoCount}} 本の動画</span>{{end}}
        {{if .Channel.Cadence}}<span>📅 {{.Channel.Cadence}}</span>{{end}}
      </div>
    </div>
  </div>
</header>

<main class="wrap">
  <nav class="tabs" role="tablist">
  {{range .Tabs}}
    <a href="/?year={{.Year}}" role="tab" data-year="{{.Year}}" aria-selected="{{.Active}}"{{if .Active}} class="active"{{end}}>{{.Label}}</a>
  {{end}}
  </nav>

  {{range .Tabs}}
  <section class="panel" role="tabpanel" data-year="{{.Year}}"{{if not .Active}} hidden{{end}}>
    {{if .Cards}}
    <div class="grid">
    {{range .Cards}}
      <a class="card" href="{{.Href}}" data-id="{{.ID}}">
        <div class="thumb">
          <img src="{{.Thumbnail}}" alt="{{.Title}}" width="320" height="180" loading="lazy"
               onerror="this.onerror=null;this.src='/placeholder.svg'">
          <span class="duration">🕒 {{.Duration}}</span>
        </div>
        <div class="body">
          <h3>{{.Title}}</h3>
          {{template "tags" .Tags}}
          <div class="spacer"></div>
          <span class="muted date">{{.Date}}</span>
        </div>
      </a>
    {{end}}
    </div>
    {{else}}
    <p class="muted">この年の動画はまだありません。</p>
    {{end}}
  </section>
  {{end}}
</main>

<script>
(function(){
  var tabs = document.querySelectorAll('.tabs a');
  var panels = document.querySelectorAll('section.panel');
  function select(year){
    Array.prototype.forEach.call(tabs, function(t){
      var on = t.getAttribute('data-year') === year;
      t.classList.toggle('active', on);
      t.setAttribute('aria-selected', on ? 'true' : 'false');
    });
    Array.prototype.forEach.call(panels, function(p){
      p.hidden = p.getAttribute('data-year') !== year;
    });
  }
  Array.prototype.forEach.call(tabs, function(t){
    t.addEventListener('click', function(e){
      e.preventDefault();
      select(t.getAttribute('data-year'));
    });
  });
})();
</script>
{{end}}

{{define "detail"}}{{template "head" .Title}}
<div class="wrap narrow">
  <p><a class="muted back" href="/">⬅ サムネイル一覧に戻る</a></p>
  <article class="detail">
    <div class="thumb">
      <img src="{{.Thumbnail}}" alt="{{.Title}}"
           onerror="this.onerror=null;this.src='/placeholder.svg'">
      <span class="duration">🕒 {{.Duration}}</span>
    </div>
    <div class="body">
      <h1>{{.Title}}</h1>
      {{template "tags" .Tags}}
      <p class="muted date">📅 {{.Date}}</p>

      {{if .EmbedURL}}
      <section class="watch">
        <h2>動画を視聴</h2>
        <div class="player">
          <iframe src="{{.EmbedURL}}" title="{{.Title}}"
                  allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture"
                  allowfullscreen></iframe>
        </div>
      </section>
      {{else}}
      <section class="about">
        <h2>動画について</h2>
        <div class="notice"><p style="margin:0">{{.Notice}}</p></div>
      </section>
      {{end}}

      <section>
        <h2>制作について</h2>
        <p class="description">{{.Description}}</p>
      </section>
    </div>
  </article>
</div>
{{end}}

{{define "notfound"}}{{template "head" "ページが見つかりません"}}
<div class="wrap narrow">
  <h1>404</h1>
  <p class="muted">お探しのページは見つかりませんでした。</p>
  <p><a href="/">⬅ サムネイル一覧に戻る</a></p>
</div>
{{end}}
`
