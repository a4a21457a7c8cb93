package api

const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Validator Uptime</title>
<style>
  *, *::before, *::after { box-sizing: border-box; margin: 0; padding: 0; }
  body {
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
    background: #0f1117;
    color: #e4e4e7;
    min-height: 100vh;
  }
  header {
    padding: 1.5rem 2rem;
    background: #16181d;
    border-bottom: 1px solid #27272a;
    display: flex;
    align-items: center;
    justify-content: space-between;
  }
  header h1 { font-size: 1.25rem; font-weight: 600; }
  header .updated { color: #71717a; font-size: 0.875rem; }
  main { max-width: 72rem; margin: 0 auto; padding: 2rem; }
  #validators {
    display: grid;
    grid-template-columns: repeat(auto-fit, minmax(20rem, 1fr));
    gap: 1rem;
  }
  .validator {
    background: #16181d;
    border: 1px solid #27272a;
    border-radius: 0.5rem;
    padding: 1.25rem;
  }
  .validator-id { font-size: 0.8rem; word-break: break-all; margin-bottom: 0.25rem; }
  .validator-id a { color: #e84142; text-decoration: none; }
  .validator-name { font-weight: 600; margin-bottom: 0.75rem; }
  .validator-detail { display: flex; justify-content: space-between; padding: 0.25rem 0; font-size: 0.9rem; }
  .detail-label { color: #a1a1aa; }
  .total-stake { border-top: 1px solid #27272a; margin-top: 0.5rem; padding-top: 0.5rem; font-weight: 600; }
  .uptime-high { color: #22c55e; }
  .uptime-medium { color: #eab308; }
  .uptime-low { color: #ef4444; }
  .status { color: #eab308; }
  .error-message { background: #3f1d1d; color: #fecaca; padding: 0.75rem 1rem; border-radius: 0.5rem; margin-bottom: 1rem; }
  #loading { color: #71717a; text-align: center; padding: 3rem; }
</style>
</head>
<body>
<header>
  <h1>Validator Uptime</h1>
  <span class="updated" id="updated"></span>
</header>
<main>
  <div id="error-container"></div>
  <div id="loading">Loading validator data…</div>
  <div id="validators"></div>
</main>
<script>
(function () {
  const DEFAULT_REFRESH_INTERVAL_MS = 600000;
  const UPTIME_HIGH = 95;
  const UPTIME_MEDIUM = 90;

  const validators = document.getElementById("validators");
  const errors = document.getElementById("error-container");
  const loading = document.getElementById("loading");
  const updated = document.getElementById("updated");

  function el(tag, className, text) {
    const node = document.createElement(tag);
    if (className) node.className = className;
    if (text !== undefined) node.textContent = text;
    return node;
  }

  function amount(value) {
    const n = parseFloat(value);
    return isNaN(n) ? 0 : n;
  }

  function avax(value) {
    if (typeof value === "string") return value;
    return value.toLocaleString() + " AVAX";
  }

  function uptimeClass(uptime) {
    if (uptime >= UPTIME_HIGH) return "uptime-high";
    if (uptime >= UPTIME_MEDIUM) return "uptime-medium";
    return "uptime-low";
  }

  function detail(label, value, valueClass) {
    const row = el("div", "validator-detail");
    row.appendChild(el("span", "detail-label", label));
    row.appendChild(el("span", valueClass || "", value));
    return row;
  }

  function card(nodeId, details) {
    const box = el("div", "validator");
    const id = el("p", "validator-id");
    const link = el("a", "", nodeId);
    link.href = "https://avascan.info/staking/validator/" + encodeURIComponent(nodeId);
    link.target = "_blank";
    link.rel = "noopener";
    id.appendChild(link);
    box.appendChild(id);

    if (typeof details === "string") {
      box.appendChild(detail("Status", details, "status"));
      return box;
    }

    box.appendChild(el("p", "validator-name", details.name || "Unknown"));
    box.appendChild(detail("Location", details.location || "Unknown"));
    const uptime = typeof details.uptime === "number" ? details.uptime + "%" : details.uptime;
    box.appendChild(detail("Uptime", uptime, uptimeClass(details.uptime)));
    let expiration = details.expiration_date || "Unknown";
    if (details.expires_in) expiration += " (" + details.expires_in + ")";
    box.appendChild(detail("Expiration Date", expiration));
    box.appendChild(detail("Stake from Self", avax(details.stake_from_self)));
    box.appendChild(detail("Stake from Delegations", avax(details.stake_from_delegations)));
    const total = amount(details.stake_from_self) + amount(details.stake_from_delegations);
    const totalRow = detail("Total Stake", avax(total));
    totalRow.classList.add("total-stake");
    box.appendChild(totalRow);
    return box;
  }

  function showError(message) {
    errors.replaceChildren(el("div", "error-message", message));
  }

  function fetchData() {
    fetch("data", { headers: { accept: "application/json" } })
      .then(function (resp) {
        if (!resp.ok) throw new Error("status " + resp.status);
        return resp.json();
      })
      .then(function (data) {
        errors.replaceChildren();
        const ids = Object.keys(data || {}).sort();
        if (ids.length === 0) {
          showError("No validator data available.");
          return;
        }
        validators.replaceChildren.apply(validators, ids.map(function (id) { return card(id, data[id]); }));
        updated.textContent = "Updated " + new Date().toLocaleTimeString();
      })
      .catch(function () {
        showError("Failed to fetch validator data. Please try again.");
      })
      .finally(function () {
        loading.style.display = "none";
      });
  }

  fetchData();
  fetch("config")
    .then(function (resp) { return resp.json(); })
    .then(function (cfg) { setInterval(fetchData, cfg.refresh_interval_ms || DEFAULT_REFRESH_INTERVAL_MS); })
    .catch(function () { setInterval(fetchData, DEFAULT_REFRESH_INTERVAL_MS); });
})();
</script>
</body>
</html>
`
