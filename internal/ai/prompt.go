package ai

// System and user prompt templates for the model-assisted extractors. Both
// demand a single JSON object with no prose; the response cleaner still
// tolerates fenced or prose-wrapped output.

const statementSystemText = "You are a financial data extraction engine. Respond with a single JSON object only — no prose, no markdown fences. Use 0 for metrics that are not present in the document."

const statementPrompt = `Extract financial statement data from the document below.

Return a single JSON object with exactly these keys:
{
  "companyName": "<company name or 'Unknown Company'>",
  "statementType": "<income | balance | cashflow>",
  "period": "<reporting period, e.g. 'Q4 2023', or ''>",
  "confidence": <0-100>,
  "revenue": <number>,
  "costOfGoodsSold": <number>,
  "grossProfit": <number>,
  "operatingExpenses": <number>,
  "operatingIncome": <number>,
  "netIncome": <number>,
  "totalAssets": <number>,
  "totalLiabilities": <number>,
  "totalEquity": <number>,
  "cash": <number>,
  "accountsReceivable": <number>,
  "inventory": <number>,
  "propertyPlantEquipment": <number>,
  "accountsPayable": <number>,
  "longTermDebt": <number>,
  "year": <number>,
  "quarter": "<Q1-Q4 or ''>"
}

Document:
%s`

const productSystemText = "You are a product list extraction engine. Respond with a single JSON object only — no prose, no markdown fences."

const productPrompt = `Extract the itemized products from the text below.

Return a single JSON object with exactly these keys:
{
  "products": [
    {"name": "<product name>", "price": <number>, "quantity": <integer >= 1>, "currency": "<ISO code, default USD>"}
  ],
  "confidence": <0-100>
}

Text:
%s`
